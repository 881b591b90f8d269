package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/client"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	customersUser uint
	notesKind     string
	notesOwner    uint
)

// newClient builds an API client from flags, falling back to the loaded
// configuration's API_URL and to GROOMY_TOKEN.
func newClient() *client.Client {
	base := apiURL
	if base == "" {
		cfg, err := config.Load()
		if err != nil {
			base = os.Getenv("API_URL")
		} else {
			base = cfg.APIURL
		}
	}
	if base == "" {
		base = "http://localhost:8080"
	}
	tok := token
	if tok == "" {
		tok = os.Getenv("GROOMY_TOKEN")
	}
	return client.New(base, client.WithToken(tok))
}

// printEnvelope writes v as indented JSON and fails when the call did not succeed
func printEnvelope(w io.Writer, success bool, message string, v interface{}) error {
	if !success {
		return fmt.Errorf("request failed: %s", message)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClient().Login(cmd.Context(), services.LoginInput{Email: loginEmail, Password: loginPassword})
		if err != nil {
			return err
		}
		if !env.Success || env.Data == nil {
			return fmt.Errorf("login failed: %s", env.Message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), env.Data.Token)
		return nil
	},
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List a user's customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClient().Customers().ListByOwner(cmd.Context(), customersUser)
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env.Success, env.Message, env.Data)
	},
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the notes attached to a customer, appointment or service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseOwnerKind(notesKind)
		if err != nil {
			return err
		}
		env, err := newClient().ListNotes(cmd.Context(), kind, notesOwner)
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env.Success, env.Message, env.Data)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	customersCmd.Flags().UintVar(&customersUser, "user", 0, "Owning user id")
	_ = customersCmd.MarkFlagRequired("user")

	notesCmd.Flags().StringVar(&notesKind, "kind", string(models.OwnerCustomer), "Owner kind: customer, appointment or service")
	notesCmd.Flags().UintVar(&notesOwner, "owner", 0, "Owner id")
	_ = notesCmd.MarkFlagRequired("owner")
}
