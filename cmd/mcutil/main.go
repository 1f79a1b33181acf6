package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mceliece "github.com/brendoncarroll/go-mceliece"
)

var log = mceliece.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(encapCmd)
	rootCmd.AddCommand(decapCmd)

	keygenCmd.Flags().StringVarP(&outPrefix, "out", "o", "mceliece", "prefix for the generated key files")
	encapCmd.Flags().StringVar(&pubPath, "pub", "", "path to the public key")
	encapCmd.Flags().StringVar(&ctPath, "ct", "ct.bin", "path to write the ciphertext to")
	decapCmd.Flags().StringVar(&privPath, "key", "", "path to the private key")
	decapCmd.Flags().StringVar(&ctPath, "ct", "ct.bin", "path to read the ciphertext from")
}

var rootCmd = &cobra.Command{
	Use:   "mcutil",
	Short: "McEliece KEM utilities",
}

var (
	outPrefix string
	pubPath   string
	privPath  string
	ctPath    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a key encapsulation round trip and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Key Sizes:")
		cmd.Printf("- Shared Secret: %d bytes\n", mceliece.SharedSecretSize)
		cmd.Printf("- Public Key: %d bytes\n", mceliece.PublicKeySize)
		cmd.Printf("- Private Key: %d bytes\n", mceliece.PrivateKeySize)
		cmd.Printf("- Ciphertext: %d bytes\n", mceliece.CiphertextSize)

		log.Info("generating key pair...")
		pub, priv, err := mceliece.Generate(rand.Reader)
		if err != nil {
			return err
		}
		pubData := make([]byte, mceliece.PublicKeySize)
		mceliece.MarshalPublic(pubData, pub)
		cmd.Printf("Public Key (first 32 bytes): %s...\n", hex.EncodeToString(pubData[:32]))

		var sent, received mceliece.SharedSecret
		ct := make([]byte, mceliece.CiphertextSize)
		if err := mceliece.Encapsulate(&sent, ct, pub, rand.Reader); err != nil {
			return err
		}
		cmd.Printf("Ciphertext: %s\n", hex.EncodeToString(ct))
		cmd.Printf("Sender's Shared Secret: %s\n", hex.EncodeToString(sent[:]))

		if err := mceliece.Decapsulate(&received, priv, ct); err != nil {
			return err
		}
		cmd.Printf("Receiver's Shared Secret: %s\n", hex.EncodeToString(received[:]))

		if sent != received {
			return fmt.Errorf("shared secrets do not match")
		}
		cmd.Println("shared secrets match")
		return nil
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a key pair and write it to <prefix>.pub and <prefix>.key",
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, priv, err := mceliece.Generate(rand.Reader)
		if err != nil {
			return err
		}
		pubData := make([]byte, mceliece.PublicKeySize)
		mceliece.MarshalPublic(pubData, pub)
		if err := os.WriteFile(outPrefix+".pub", pubData, 0o644); err != nil {
			return err
		}
		privData := make([]byte, mceliece.PrivateKeySize)
		mceliece.MarshalPrivate(privData, priv)
		if err := os.WriteFile(outPrefix+".key", privData, 0o600); err != nil {
			return err
		}
		log.WithField("prefix", outPrefix).Info("wrote key pair")
		return nil
	},
}

var encapCmd = &cobra.Command{
	Use:   "encap",
	Short: "Encapsulate against a public key; writes the ciphertext and prints the shared secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(pubPath)
		if err != nil {
			return err
		}
		pub, err := mceliece.ParsePublic(data)
		if err != nil {
			return err
		}
		var ss mceliece.SharedSecret
		ct := make([]byte, mceliece.CiphertextSize)
		if err := mceliece.Encapsulate(&ss, ct, pub, rand.Reader); err != nil {
			return err
		}
		if err := os.WriteFile(ctPath, ct, 0o644); err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(ss[:]))
		return nil
	},
}

var decapCmd = &cobra.Command{
	Use:   "decap",
	Short: "Decapsulate a ciphertext with a private key; prints the shared secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyData, err := os.ReadFile(privPath)
		if err != nil {
			return err
		}
		priv, err := mceliece.ParsePrivate(keyData)
		if err != nil {
			return err
		}
		ct, err := os.ReadFile(ctPath)
		if err != nil {
			return err
		}
		var ss mceliece.SharedSecret
		if err := mceliece.Decapsulate(&ss, priv, ct); err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(ss[:]))
		return nil
	},
}
