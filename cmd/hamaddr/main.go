package main

import (
	"log"

	"go.arnce.org/hamaddr/src/hamaddrcmd"
)

func main() {
	if err := hamaddrcmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
