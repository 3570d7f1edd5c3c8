package main

import (
	"bitbucket.org/adfreiburg/dehyph/internal/app/evaluate"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	evaluate.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
              __
  ___ _   __ / /___ _/ /____
 / _ \ | / // / __ '/ __/ _ \
/  __/ |/ // / /_/ / /_/  __/
\___/|___//_/\__,_/\__/\___/

                  ate | v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/adfreiburg/dehyph"))
}
