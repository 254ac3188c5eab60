package main

import "github.com/yyyoichi/wavemark/cmd/wavemark/cmd"

func main() {
	cmd.Execute()
}
