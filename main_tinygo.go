//go:build tinygo

package main

import (
	"wavescope/app"
	"wavescope/hal"
)

func main() {
	app.Run(hal.New())
}
