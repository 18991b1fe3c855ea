// Package cliutil holds the tiny argument-parsing helpers shared by the
// cmd/schlafli and cmd/special test drivers: both take a group, a
// space-separated subgroup generator vector, and a target coset count,
// and report whether solving the group matches that target.
package cliutil
