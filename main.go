/*
File    : monkey/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import "github.com/akashmaji946/monkey/cmd"

func main() {
	cmd.Execute()
}
