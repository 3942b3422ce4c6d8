package main

import (
	"fmt"
	"os"

	"github.com/iver-wharf/wharf-core/pkg/logger"
	wharfvalconv "github.com/iver-wharf/wharf-valconv"
)

var log = logger.NewScoped("WHARF-VALCONV")

func main() {
	os.Exit(run())
}

func run() int {
	version, err := wharfvalconv.GetVersion()
	if err != nil {
		fmt.Println("Failed to load version:", err)
	}
	return execute(version)
}
