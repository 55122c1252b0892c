// Command socialnet はミニマルなSNSのAPIサーバーと運用サブコマンドを提供する。
//
// 使い方:
//
//	socialnet [serve|migrate|cleanup|healthcheck]
package main

import (
	"fmt"
	"os"

	"github.com/hitoshi/socialnet/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
