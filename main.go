package main

import (
	"github.com/leighmacdonald/steamwebapi/internal/cmd"
)

func main() {
	cmd.Execute()
}
