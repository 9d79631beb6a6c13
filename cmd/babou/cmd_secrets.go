package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/secrets"
)

func (a *app) newEncryptCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:         "encrypt [text...]",
		Short:       "Encrypt text with a passphrase",
		Long:        "Encrypt with AES-256-GCM. The passphrase comes from --secret or BABOU_SECRET.",
		Annotations: map[string]string{sensitiveAnnotation: "true"},
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			out, err := secrets.EncryptString(a.passphrase(secret), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}),
	}

	cmd.Flags().StringVar(&secret, "secret", "", "passphrase, overrides BABOU_SECRET")
	return cmd
}

func (a *app) newDecryptCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:         "decrypt [ciphertext]",
		Short:       "Decrypt the output of babou encrypt",
		Annotations: map[string]string{sensitiveAnnotation: "true"},
		Args:        cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			out, err := secrets.DecryptString(a.passphrase(secret), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}),
	}

	cmd.Flags().StringVar(&secret, "secret", "", "passphrase, overrides BABOU_SECRET")
	return cmd
}

func (a *app) passphrase(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Secret
}
