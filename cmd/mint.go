package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Leugard/daytogether-auth/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var mintUID string

var mintCmd = &cobra.Command{
	Use:     "mint",
	Short:   "Mint a custom token for a uid without verifying an ID token",
	Example: "  daytogether-auth mint --uid 109876543210",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := buildIssuer(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("building issuer: %w", err)
		}

		token, err := issuer.CustomToken(cmd.Context(), mintUID)
		if err != nil {
			return fmt.Errorf("minting failed: %w", err)
		}
		log.Debug().Str("uid", mintUID).Msg("custom token minted")

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(types.TokenResponse{CustomToken: token})
	},
}

var verifyIDToken string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Google ID token and print its claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		verifier, err := buildVerifier(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("building verifier: %w", err)
		}

		claims, err := verifier.Verify(cmd.Context(), verifyIDToken)
		if err != nil {
			return fmt.Errorf("%s: %w", types.KindOf(err), err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	},
}

func init() {
	rootCmd.AddCommand(mintCmd, verifyCmd)

	mintCmd.Flags().StringVar(&mintUID, "uid", "", "subject to mint the custom token for")
	_ = mintCmd.MarkFlagRequired("uid")

	verifyCmd.Flags().StringVar(&verifyIDToken, "id-token", "", "Google ID token to verify")
	_ = verifyCmd.MarkFlagRequired("id-token")
}
