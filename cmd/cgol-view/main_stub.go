//go:build !ebiten

package main

import (
	"log"
	"os"
)

// Without the ebiten tag there is no window backend linked in.
func main() {
	log.SetFlags(0)
	log.Printf("%s: no window backend in this build, rebuild with -tags ebiten", os.Args[0])
	os.Exit(2)
}
