package main

import (
	"bitbucket.org/adfreiburg/dehyph/internal/app/charprob"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	charprob.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
        __                             __
  _____/ /_  ____ __________  _________  / /_
 / ___/ __ \/ __ '/ ___/ __ \/ ___/ __ \/ __ \
/ /__/ / / / /_/ / /  / /_/ / /  / /_/ / /_/ /
\___/_/ /_/\__,_/_/  / .___/_/   \____/_.___/
                    /_/       | v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/adfreiburg/dehyph"))
}
