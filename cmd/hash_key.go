package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ascent-cms/services"
	"github.com/ascent-cms/utils"
)

var (
	generateKey bool
	keyLength   int
)

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key [key]",
	Short: "Print the bcrypt hash of an admin key for ADMIN_KEY_HASH",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		switch {
		case generateKey:
			generated, err := utils.GenerateAdminKey(keyLength)
			if err != nil {
				return err
			}
			key = generated
			color.New(color.FgCyan).Println("Admin key (store it somewhere safe, it is not shown again):")
			fmt.Println(key)
		case len(args) == 1:
			key = args[0]
		default:
			return errors.New("pass a key or use --generate")
		}

		hash, err := services.HashKey(key)
		if err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Println("ADMIN_KEY_HASH:")
		fmt.Println(hash)
		return nil
	},
}

func init() {
	hashKeyCmd.Flags().BoolVarP(&generateKey, "generate", "g", false, "Generate a random admin key")
	hashKeyCmd.Flags().IntVar(&keyLength, "length", 32, "Length in bytes of a generated key")
}
