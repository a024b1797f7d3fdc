package main

import (
	"github.com/nandemo-ya/dms-go/internal/dmsctl/cmd"
)

func main() {
	cmd.Execute()
}
