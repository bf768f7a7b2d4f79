package main

import (
	"flag"
	"log"

	"github.com/riskdesk/riskdesk-backend/cmd"
)

func main() {
	shouldRunServer := flag.Bool("server", true, "Run the http server")
	flag.Parse()

	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
