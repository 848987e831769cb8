package cluster

import "errors"

// ErrHedgehogTooFewSpokes is returned by NewHedgehog when fewer than two
// spoke variables are given.
var ErrHedgehogTooFewSpokes = errors.New("cluster: hedgehog requires at least two spoke variables")

// ErrBalloonTooFewVars is returned by NewBalloon when fewer than three
// variables are given.
var ErrBalloonTooFewVars = errors.New("cluster: balloon requires at least three variables")
