package main

import "hearth/cmd/hearth/root"

func main() {
	root.Execute()
}
