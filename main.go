/*
Copyright © 2023 Glossopoeia
*/
package main

import "github.com/glossopoeia/resugar/cmd"

func main() {
	cmd.Execute()
}
