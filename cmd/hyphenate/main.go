package main

import (
	"bitbucket.org/adfreiburg/dehyph/internal/app/hyphenate"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	hyphenate.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
    __                __
   / /_  __  ______  / /_  ___  ____
  / __ \/ / / / __ \/ __ \/ _ \/ __ \
 / / / / /_/ / /_/ / / / /  __/ / / /
/_/ /_/\__, / .___/_/ /_/\___/_/ /_/
      /____/_/   ate | v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/adfreiburg/dehyph"))
}
