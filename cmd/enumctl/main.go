package main

import (
	// Catalogued example types, so list and friends have something to show
	// without --file.
	_ "github.com/joshuapare/enumkit/examples/httpmethod"
	_ "github.com/joshuapare/enumkit/examples/planet"
)

func main() {
	execute()
}
