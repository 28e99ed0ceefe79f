// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package main provides the dogekey CLI tool for generating, deriving, and
// signing with Dogecoin keys and addresses.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/dogekey"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const maxWidth = 72

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	chainName  string
	language   string
	promptPass bool

	rootCmd = &cobra.Command{
		Use:          "dogekey",
		Short:        "Generate, derive, and sign with Dogecoin keys and addresses",
		SilenceUsage: true,
	}

	genkeyCmd = &cobra.Command{
		Use:   "genkey",
		Short: "Generate a fresh WIF private key and its P2PKH address",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			chain, err := resolveChain(chainName)
			if err != nil {
				return err
			}
			wif, addr, err := dogekey.GeneratePrivPubKeypair(chain)
			if err != nil {
				return err
			}
			fmt.Printf("private key (WIF): %s\naddress (P2PKH):   %s\n", wif, addr)
			return nil
		},
	}

	addressCmd = &cobra.Command{
		Use:   "address <wif>",
		Short: "Derive the P2PKH/P2SH-P2WPKH/P2WPKH addresses of a WIF private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			chain, err := resolveChain(chainName)
			if err != nil {
				return err
			}
			pubHex, err := dogekey.PubkeyFromPrivatekey(chain, args[0])
			if err != nil {
				return err
			}
			p2pkh, p2shP2wpkh, p2wpkh, err := dogekey.AddressesFromPubkeyHex(chain, pubHex)
			if err != nil {
				return err
			}
			fmt.Printf("P2PKH:       %s\nP2SH-P2WPKH: %s\nP2WPKH:      %s\n", p2pkh, p2shP2wpkh, p2wpkh)
			return nil
		},
	}

	hdMasterCmd = &cobra.Command{
		Use:   "hd-master",
		Short: "Generate a fresh BIP-32 master extended key from process entropy",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			chain, err := resolveChain(chainName)
			if err != nil {
				return err
			}
			xpriv, addr, err := dogekey.GenerateHDMasterKeypair(chain)
			if err != nil {
				return err
			}
			fmt.Printf("master xpriv: %s\naddress:      %s\n", xpriv, addr)
			return nil
		},
	}

	hdDeriveCmd = &cobra.Command{
		Use:   "hd-derive <xkey> <path>",
		Short: "Walk an extended key along a derivation path, e.g. m/0'/1",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			out, err := dogekey.HDDerive(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	bip44Cmd = &cobra.Command{
		Use:   "bip44 <xkey>",
		Short: "Derive the BIP-44 leaf address for account/change/index from a master key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := cmd.Flags().GetUint32("account")
			change, _ := cmd.Flags().GetUint32("change")
			index, _ := cmd.Flags().GetUint32("index")
			addr, err := dogekey.DeriveBIP44Facade(args[0], account, change, &index, false)
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}

	mnemonicCmd = &cobra.Command{
		Use:   "mnemonic <words...>",
		Short: "Derive the first BIP-44 receive address from a BIP-39 mnemonic",
		Long: `Derive the first BIP-44 receive address from a BIP-39 mnemonic.

The mnemonic words are joined with spaces and validated against the
selected wordlist language (--language, default English). Pass
--prompt-passphrase to enter the BIP-39 passphrase on a hidden tty
prompt instead of leaving it empty. Pass --master-only to print the
mnemonic's HD master xpriv and its own P2PKH address instead of walking
a BIP-44 path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := resolveChain(chainName)
			if err != nil {
				return err
			}
			if err := setLanguage(language); err != nil {
				return err
			}
			account, _ := cmd.Flags().GetUint32("account")
			change, _ := cmd.Flags().GetUint32("change")
			index, _ := cmd.Flags().GetUint32("index")
			masterOnly, _ := cmd.Flags().GetBool("master-only")

			var passphrase string
			if promptPass {
				pass, err := readPassword("BIP-39 passphrase: ")
				if err != nil {
					return err
				}
				defer zeroBytes(pass)
				passphrase = string(pass)
			}

			mnemonic := strings.Join(args, " ")
			if masterOnly {
				xpriv, p2pkh, err := dogekey.GenerateHDMasterKeypairFromMnemonic(mnemonic, passphrase, chain)
				if err != nil {
					return err
				}
				fmt.Println(xpriv)
				fmt.Println(p2pkh)
				return nil
			}

			addr, err := dogekey.DeriveFromMnemonic(account, change, index, mnemonic, passphrase, chain)
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}

	signCmd = &cobra.Command{
		Use:   "sign <priv-hex> <message>",
		Short: "Sign message with a hex-encoded private key, per the Dogecoin signed-message format",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			sig, err := dogekey.SignMessageFacade(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(sig)
			return nil
		},
	}

	verifyMsgCmd = &cobra.Command{
		Use:   "verify-msg <address> <base64-sig> <message>",
		Short: "Verify a Dogecoin signed message against an address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := dogekey.VerifyMessageFacade(args[0], args[1], args[2])
			cmd.Println(ok)
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under the same license as this module.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	completionCmd = &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&chainName, "chain", "main", "Chain: main, test, regtest, or signet")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "BIP-39 wordlist language")

	mnemonicCmd.Flags().Uint32("account", 0, "BIP-44 account index")
	mnemonicCmd.Flags().Uint32("change", 0, "BIP-44 change index (0=external, 1=internal)")
	mnemonicCmd.Flags().Uint32("index", 0, "BIP-44 address index")
	mnemonicCmd.Flags().BoolVar(&promptPass, "prompt-passphrase", false, "Prompt for a BIP-39 passphrase on a hidden tty")
	mnemonicCmd.Flags().Bool("master-only", false, "Print the HD master xpriv and address instead of deriving a BIP-44 leaf")

	bip44Cmd.Flags().Uint32("account", 0, "BIP-44 account index")
	bip44Cmd.Flags().Uint32("change", 0, "BIP-44 change index (0=external, 1=internal)")
	bip44Cmd.Flags().Uint32("index", 0, "BIP-44 address index")

	rootCmd.AddCommand(genkeyCmd, addressCmd, hdMasterCmd, hdDeriveCmd, bip44Cmd, mnemonicCmd, signCmd, verifyMsgCmd, manCmd, completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			formatPasswordError(err)
		}
		os.Exit(1)
	}
}

func resolveChain(name string) (dogekey.ChainParams, error) {
	switch sanitizeLang(name) {
	case "main", "mainnet", "":
		return dogekey.Main, nil
	case "test", "testnet":
		return dogekey.Test, nil
	case "regtest":
		return dogekey.Regtest, nil
	case "signet":
		return dogekey.Signet, nil
	default:
		return dogekey.ChainParams{}, fmt.Errorf("unknown chain %q: use main, test, regtest, or signet", name)
	}
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatPasswordError renders err in the same styled error block the
// teacher CLI uses for password failures, reused here for any command
// error so a terminal user gets a legible, wrapped message.
func formatPasswordError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// setLanguage selects the BIP-39 wordlist mnemonics are validated against.
func setLanguage(language string) error {
	list := getWordlist(language)
	if list == nil {
		return fmt.Errorf("this language is not supported")
	}
	dogekey.SetWordlistLanguage(list)
	return nil
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

func getWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages()
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und {
		return nil
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	wl := wordLists[tag]
	if wl == nil {
		return wordLists[btag]
	}
	return wl
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close() //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
