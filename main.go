package main

import (
	"fmt"
	"log"
	"os"

	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/mcptests"
	"github.com/frontlook-admin/mcp-contract-tests/servicedef"
)

func main() {
	var cliParams commandParams
	if !cliParams.Read(os.Args) {
		os.Exit(1)
	}

	serviceParams := servicedef.DefaultParams()
	if cliParams.serviceFile != "" {
		var err error
		serviceParams, err = servicedef.Load(cliParams.serviceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid service definition: %s\n", err)
			os.Exit(1)
		}
	}
	if cliParams.image != "" {
		serviceParams.Image = cliParams.image
	}

	mainDebugLogger := framework.NullLogger()
	if cliParams.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	info, err := mcptests.QueryServiceInfo(serviceParams, mainDebugLogger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Test target error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(cliParams.filters, info.Tools, mcptests.AllTools)

	fmt.Println("Running test suite")

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: cliParams.debug || cliParams.debugAll,
		DebugOutputOnSuccess: cliParams.debugAll,
	}

	results := mcptests.RunTestSuite(serviceParams, info, cliParams.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
