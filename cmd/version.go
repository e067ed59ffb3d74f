/*
File    : monkey/cmd/version.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, license and author information",
	Run: func(cmd *cobra.Command, args []string) {
		cyanColor.Fprintln(cmd.OutOrStdout(), "monkey — lexer, Pratt parser and AST front-end")
		cyanColor.Fprintf(cmd.OutOrStdout(), "Version: %s\n", VERSION)
		cyanColor.Fprintf(cmd.OutOrStdout(), "License: %s\n", LICENSE)
		cyanColor.Fprintf(cmd.OutOrStdout(), "Author : %s\n", AUTHOR)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
