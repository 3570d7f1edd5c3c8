package main

import (
	"bitbucket.org/adfreiburg/dehyph/internal/app/resolve"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	resolve.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
    ________  _____ ____  / /  _____
   / ___/ _ \/ ___// __ \/ /| / / _ \
  / /  /  __(__  )/ /_/ / / |/ /  __/
 /_/   \___/____/ \____/_/|___/\___/

                     ve | v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/adfreiburg/dehyph"))
}
