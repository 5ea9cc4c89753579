package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Printf("loopsmith: %s\n", err.Error())
		os.Exit(1)
	}
}
