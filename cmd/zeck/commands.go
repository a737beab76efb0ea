package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/zeck/fibcode"
	"github.com/calebcase/zeck/zeckendorf"
)

// parseOperand reads a bit string, or a decimal number with --decimal.
func parseOperand(s string) (*zeckendorf.Number, error) {
	var n *zeckendorf.Number
	var err error

	if decimal {
		n, err = zeckendorf.ParseDecimal(s)
	} else {
		n, err = zeckendorf.Parse(s)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid operand %q: %w", s, err)
	}

	logger.Debug("parsed operand",
		zap.String("input", s),
		zap.Stringer("bits", n),
		zap.Int("len", n.Len()),
	)

	return n, nil
}

func parseOperands(args []string) ([]*zeckendorf.Number, error) {
	ns := make([]*zeckendorf.Number, 0, len(args))
	for _, arg := range args {
		n, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}

		ns = append(ns, n)
	}

	return ns, nil
}

// printNumber writes n in the output form selected by --decimal.
func printNumber(w io.Writer, n *zeckendorf.Number) {
	if decimal {
		fmt.Fprintf(w, "%d\n", n)
	} else {
		fmt.Fprintf(w, "%s\n", n)
	}
}

// normCmd normalizes bit strings.
func normCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norm <bits>...",
		Short: "Print the normalized form of bit strings",
		Long: `Rewrites each bit string so no two adjacent bits are set.

Example:
  zeck norm 11 1100    # 100 and 10000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := zeckendorf.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid operand %q: %w", arg, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", n, n)
			}

			return nil
		},
	}
}

// fromCmd converts decimal numbers.
func fromCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from <decimal>...",
		Short: "Convert decimal numbers to Zeckendorf form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := zeckendorf.ParseDecimal(arg)
				if err != nil {
					return fmt.Errorf("invalid operand %q: %w", arg, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n)
			}

			return nil
		},
	}
}

type binaryOp func(z, x, y *zeckendorf.Number) *zeckendorf.Number

func add(z, x, y *zeckendorf.Number) *zeckendorf.Number { return z.Add(x, y) }
func and(z, x, y *zeckendorf.Number) *zeckendorf.Number { return z.And(x, y) }
func or(z, x, y *zeckendorf.Number) *zeckendorf.Number  { return z.Or(x, y) }
func xor(z, x, y *zeckendorf.Number) *zeckendorf.Number { return z.Xor(x, y) }

// binaryCmd builds a command that combines two operands with op.
func binaryCmd(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseOperands(args)
			if err != nil {
				return err
			}

			z := op(new(zeckendorf.Number), ns[0], ns[1])
			logger.Debug("computed",
				zap.String("op", name),
				zap.Stringer("a", ns[0]),
				zap.Stringer("b", ns[1]),
				zap.Stringer("result", z),
			)

			printNumber(cmd.OutOrStdout(), z)

			return nil
		},
	}
}

func shlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shl <a> <n>",
		Short: "Move every term of a up n positions",
		Long: `Shifts the bit string of a left by n positions. This is a shift of the
representation, not a multiplication: 101 shl 3 is 101000 (4 becomes 18).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			shift, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid shift %q: %w", args[1], err)
			}

			printNumber(cmd.OutOrStdout(), x.Lsh(x, uint(shift)))

			return nil
		},
	}
}

func cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two numbers (prints -1, 0 or 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseOperands(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns[0].Cmp(ns[1]))

			return nil
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <a>...",
		Short: "Write numbers as a hex encoded Fibonacci code stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseOperands(args)
			if err != nil {
				return err
			}

			data, err := fibcode.Marshal(ns...)
			if err != nil {
				return err
			}

			logger.Info("encoded",
				zap.Int("values", len(ns)),
				zap.Int("bytes", len(data)),
			)

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Read numbers from a hex encoded Fibonacci code stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex %q: %w", args[0], err)
			}

			d := fibcode.NewDecoder(bytes.NewReader(data))
			for {
				n := &zeckendorf.Number{}

				err = d.Decode(n)
				if err == io.EOF {
					break
				}

				if err != nil {
					logger.Error("decode failed",
						zap.Uint64("decoded", d.Count()),
						zap.Error(err),
					)

					return err
				}

				printNumber(cmd.OutOrStdout(), n)
			}

			logger.Info("decoded", zap.Uint64("values", d.Count()))

			return nil
		},
	}
}
