package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"corexdr/strkey"
	"corexdr/txhash"
	"corexdr/xcrypto"
	"corexdr/xdr"
)

func main() {
	rootCmd := &cobra.Command{Use: "corexdr"}
	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(strkeyCmd())
	rootCmd.AddCommand(txCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "generate a random Ed25519 key pair and its StrKey addresses",
		Run: func(cmd *cobra.Command, args []string) {
			bits, _ := cmd.Flags().GetInt("entropy")
			w, mnemonic, err := xcrypto.NewRandomWallet(bits)
			if err != nil {
				fmt.Fprintln(os.Stderr, "keygen:", err)
				os.Exit(1)
			}
			priv, pub, err := w.PrivateKey(0, 0)
			if err != nil {
				fmt.Fprintln(os.Stderr, "keygen:", err)
				os.Exit(1)
			}
			var pubArr [32]byte
			copy(pubArr[:], pub)
			var seedArr [32]byte
			copy(seedArr[:], priv.Seed())
			fmt.Printf("mnemonic: %s\n", mnemonic)
			fmt.Printf("public:   %s\n", strkey.EncodeAccountID(pubArr))
			fmt.Printf("secret:   %s\n", strkey.EncodeSeed(seedArr))
		},
	}
	cmd.Flags().Int("entropy", 128, "mnemonic entropy bits (128 or 256)")
	return cmd
}

func strkeyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "strkey"}
	cmd.AddCommand(strkeyEncodeCmd())
	cmd.AddCommand(strkeyDecodeCmd())
	cmd.AddCommand(strkeyValidateCmd())
	return cmd
}

func versionByte(kind string) (strkey.VersionByte, error) {
	switch kind {
	case "account":
		return strkey.VersionAccountID, nil
	case "seed":
		return strkey.VersionPrivateKey, nil
	case "contract":
		return strkey.VersionContract, nil
	default:
		return 0, fmt.Errorf("unknown strkey kind %q (want account, seed, or contract)", kind)
	}
}

func strkeyEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [hex-payload]",
		Short: "base32-encode a raw payload as a StrKey string",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			kind, _ := cmd.Flags().GetString("kind")
			ver, err := versionByte(kind)
			if err != nil {
				fmt.Fprintln(os.Stderr, "strkey encode:", err)
				os.Exit(1)
			}
			payload, err := hex.DecodeString(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "strkey encode: invalid hex payload:", err)
				os.Exit(1)
			}
			fmt.Println(strkey.Encode(ver, payload))
		},
	}
	cmd.Flags().String("kind", "account", "payload kind: account, seed, or contract")
	return cmd
}

func strkeyDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [strkey]",
		Short: "decode a StrKey string into its raw hex payload",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			kind, _ := cmd.Flags().GetString("kind")
			ver, err := versionByte(kind)
			if err != nil {
				fmt.Fprintln(os.Stderr, "strkey decode:", err)
				os.Exit(1)
			}
			payload, err := strkey.Decode(ver, args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "strkey decode:", err)
				os.Exit(1)
			}
			fmt.Println(hex.EncodeToString(payload))
		},
	}
	cmd.Flags().String("kind", "account", "payload kind: account, seed, or contract")
	return cmd
}

func strkeyValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [strkey]",
		Short: "report whether a StrKey string decodes cleanly",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			kind, _ := cmd.Flags().GetString("kind")
			ver, err := versionByte(kind)
			if err != nil {
				fmt.Fprintln(os.Stderr, "strkey validate:", err)
				os.Exit(1)
			}
			if strkey.IsValid(ver, args[0]) {
				fmt.Println("valid")
				return
			}
			fmt.Println("invalid")
			os.Exit(1)
		},
	}
	cmd.Flags().String("kind", "account", "payload kind: account, seed, or contract")
	return cmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tx"}
	cmd.AddCommand(txDecodeCmd())
	cmd.AddCommand(txHashCmd())
	return cmd
}

func txDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [base64-envelope]",
		Short: "decode a base64 TransactionEnvelope and print a summary",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			env, err := xdr.TransactionEnvelopeCodec.FromBase64(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "tx decode:", err)
				os.Exit(1)
			}
			switch env.Type {
			case xdr.EnvelopeTypeTx:
				tx := env.V1.Tx
				src := strkey.EncodeAccountID(tx.SourceAccount.AccountID().Ed25519)
				fmt.Printf("type:       transaction\n")
				fmt.Printf("source:     %s\n", src)
				fmt.Printf("fee:        %d\n", tx.Fee)
				fmt.Printf("seq_num:    %d\n", tx.SeqNum)
				fmt.Printf("operations: %d\n", len(tx.Operations))
				fmt.Printf("signatures: %d\n", len(env.V1.Signatures))
			case xdr.EnvelopeTypeTxFeeBump:
				fmt.Printf("type:       fee_bump_transaction\n")
				fmt.Printf("fee:        %d\n", env.FeeBump.Tx.Fee)
				fmt.Printf("signatures: %d\n", len(env.FeeBump.Signatures))
			default:
				fmt.Printf("type:       unknown (%d)\n", env.Type)
			}
		},
	}
}

func txHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [base64-envelope]",
		Short: "compute the network-tagged signature hash of a TransactionEnvelope",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			passphrase, _ := cmd.Flags().GetString("network")
			env, err := xdr.TransactionEnvelopeCodec.FromBase64(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "tx hash:", err)
				os.Exit(1)
			}
			networkID := txhash.NetworkID(passphrase)
			var hash [32]byte
			switch env.Type {
			case xdr.EnvelopeTypeTx:
				hash, err = txhash.HashTransaction(networkID, env.V1.Tx)
			case xdr.EnvelopeTypeTxFeeBump:
				hash, err = txhash.HashFeeBumpTransaction(networkID, env.FeeBump.Tx)
			default:
				fmt.Fprintf(os.Stderr, "tx hash: unsupported envelope type %d\n", env.Type)
				os.Exit(1)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "tx hash:", err)
				os.Exit(1)
			}
			fmt.Println(hex.EncodeToString(hash[:]))
		},
	}
	cmd.Flags().String("network", "", "network passphrase to hash against")
	return cmd
}
