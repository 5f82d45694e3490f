// Command pfc builds prefix-free codes for text and compares merge policies.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/elysia-999/DS2025/logger"
	"github.com/elysia-999/DS2025/std/compress/bitvector"
	"github.com/elysia-999/DS2025/std/compress/huffman"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Logger().Error().Err(err).Msg("pfc failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pfc",
		Usage: "prefix-free coding of text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "policy",
				Value:   huffman.Greedy.String(),
				Usage:   "merge policy: greedy or random",
				EnvVars: []string{"PFC_POLICY"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed of the random policy (default: time based)",
				EnvVars: []string{"PFC_SEED"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   zerolog.InfoLevel.String(),
				Usage:   "trace, debug, info, warn, error or disabled",
				EnvVars: []string{"PFC_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logger.SetOutput(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(c.App.ErrWriter), TimeFormat: "15:04:05"})
			logger.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "print the code table, the encoded bits and the decoded text of each argument",
				ArgsUsage: "TEXT...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "dump",
						Usage:     "write the raw bits of the last encoded text to `FILE`",
						TakesFile: true,
					},
				},
				Action: encode,
			},
			{
				Name:      "table",
				Usage:     "print the frequency and code tables of a text",
				ArgsUsage: "TEXT",
				Action:    table,
			},
			{
				Name:      "compare",
				Usage:     "compare the greedy code cost against random builds",
				ArgsUsage: "TEXT",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "trials",
						Value:   10,
						Usage:   "number of random builds",
						EnvVars: []string{"PFC_TRIALS"},
					},
				},
				Action: compare,
			},
		},
	}
}

func newCodec(c *cli.Context, opts ...huffman.Option) (*huffman.Codec, error) {
	policy, err := huffman.ParsePolicy(c.String("policy"))
	if err != nil {
		return nil, err
	}
	opts = append([]huffman.Option{huffman.WithPolicy(policy)}, opts...)
	if c.IsSet("seed") {
		opts = append(opts, huffman.WithSeed(c.Int64("seed")))
	}
	return huffman.New(opts...)
}

func encode(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("encode: missing TEXT", 2)
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	w := c.App.Writer

	var (
		last       *bitvector.BitVector
		lastNbBits int
	)
	for _, text := range c.Args().Slice() {
		root, codes := codec.BuildFromText(text)
		fmt.Fprintf(w, "Text: %s\n", text)
		if _, err := codes.Dump(w); err != nil {
			return err
		}

		bv, nbBits, err := codec.EncodeText(text, codes)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Encoded: %s\nBits: %d\n", bv.BitString(nbBits), nbBits)

		for _, word := range strings.Fields(text) {
			code, err := codec.EncodeWord(word, codes)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s: %s\n", word, code)
		}

		decoded, err := codec.DecodeBits(bv, nbBits, root)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Decoded: %s\n\n", decoded)

		root.Release()
		if last != nil {
			last.Release()
		}
		last, lastNbBits = bv, nbBits
	}
	defer last.Release()

	if path := c.String("dump"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		n, err := last.WriteTo(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("dump %s: %w", path, err)
		}
		logger.Logger().Info().Str("path", path).Int64("nbBytes", n).Int("nbBits", lastNbBits).Msg("bits dumped")
	}
	return nil
}

func table(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("table: expected exactly one TEXT", 2)
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	text := c.Args().First()
	root, codes := codec.BuildFromText(text)
	defer root.Release()

	freq := huffman.CountFrequencies(text)
	if _, err := freq.Dump(c.App.Writer); err != nil {
		return err
	}
	if _, err := codes.Dump(c.App.Writer); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Cost: %d bits for %d letters\n", codes.Cost(freq), freq.Total())
	return nil
}

func compare(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("compare: expected exactly one TEXT", 2)
	}
	trials := c.Int("trials")
	if trials < 1 {
		return cli.Exit(fmt.Sprintf("compare: trials must be positive, got %d", trials), 2)
	}
	seed := time.Now().UnixNano()
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	text := c.Args().First()
	freq := huffman.CountFrequencies(text)
	log := logger.Logger().With().Str("cmd", "compare").Logger()

	greedy, err := huffman.New(huffman.WithPolicy(huffman.Greedy), huffman.WithLogger(log))
	if err != nil {
		return err
	}
	root, best := greedy.BuildFromText(text)
	root.Release()

	// each trial owns its codec and source
	costs := make([]int, trials)
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			codec, err := huffman.New(
				huffman.WithPolicy(huffman.Random),
				huffman.WithSeed(seed+int64(i)),
				huffman.WithLogger(log.With().Int("trial", i).Logger()),
			)
			if err != nil {
				return err
			}
			root, codes := codec.BuildFromText(text)
			defer root.Release()
			costs[i] = codes.Cost(freq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, cost := range costs {
		total += cost
	}
	w := c.App.Writer
	fmt.Fprintf(w, "Greedy cost: %d bits\n", best.Cost(freq))
	fmt.Fprintf(w, "Random cost over %d trials (seed %d): min %d, mean %.2f, max %d bits\n",
		trials, seed, slices.Min(costs), float64(total)/float64(trials), slices.Max(costs))
	return nil
}
