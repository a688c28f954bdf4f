package main

import (
	"fmt"
	"os"
)

//	@title			Invoice API
//	@version		1.0.0
//	@description	API that returns invoice data in JSON format

//	@BasePath	/

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
