/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package main

import "github.com/mattismoel/canvigo/cmd"

func main() {
	cmd.Execute()
}
