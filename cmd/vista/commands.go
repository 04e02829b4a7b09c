package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"vista/lists"
	"vista/views"
)

func releasesCommand() *cli.Command {
	var all bool

	return &cli.Command{
		Name:  "releases",
		Usage: "verify stable releases in place and render the feed",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include prerelease versions",
				Destination: &all,
			},
		},
		Action: func(_ *cli.Context) error {
			feed := buildFeed(time.Now())
			slog.Debug("Feed built", "releases", feed.Size())

			// The mutable pass: element addresses flow through the
			// filter, so the writes land in the list.
			verified := 0
			for r := range views.Refs[release](feed).Filter(func(r *release) bool { return r.stable() }).Values() {
				r.Verified = true
				verified++
			}
			slog.Info("Verified stable releases in place", "count", verified)

			feed.Sort(func(a, b release) int { return b.Version.Compare(a.Version) })

			var rel views.Sequence[release] = views.Iterate[release](feed)
			if !all {
				rel = views.Filter[release](rel, func(r release) bool { return r.Version.Prerelease() == "" })
			}

			var rows [][]string
			for it := range views.Enumerate[release](rel).Values() {
				r := it.Val
				rows = append(rows, []string{
					strconv.Itoa(it.Pos),
					shortID(r.ID),
					r.Version.String(),
					paintChannel(r.Channel),
					humanize.IBytes(r.Size),
					humanize.Time(r.Published),
					humanize.Comma(int64(r.Downloads)),
					lo.Ternary(r.Verified, "yes", "-"),
				})
			}

			out, err := renderTable([]string{"#", "ID", "VERSION", "CHANNEL", "SIZE", "PUBLISHED", "DOWNLOADS", "VERIFIED"}, rows)
			if err != nil {
				return err
			}
			fmt.Print(out)

			return nil
		},
	}
}

func zipCommand() *cli.Command {
	return &cli.Command{
		Name:  "zip",
		Usage: "pair consecutive stable releases into an upgrade path",
		Action: func(_ *cli.Context) error {
			feed := buildFeed(time.Now())

			line := lists.NewArrayList[release](feed.Size())
			for r := range views.Filter[release](views.Iterate[release](feed), release.stable).Values() {
				line.Add(r)
			}
			line.Sort(func(a, b release) int { return a.Version.Compare(b.Version) })
			if line.Size() < 2 {
				return errors.New("not enough stable releases to pair")
			}

			// Zipping the line against its own tail pairs each release
			// with its successor; the unpaired newest release falls off
			// because pairing stops with the shorter side.
			vs := line.ToSlice()
			pairs := views.Zip[release, release](views.FromSlice(vs), views.FromSlice(vs[1:]))
			slog.Debug("Zipped upgrade path", "left", len(vs), "right", len(vs)-1, "pairs", pairs.Size())

			var rows [][]string
			for p := range pairs.Values() {
				from, to := p.V1, p.V2
				rows = append(rows, []string{
					from.Version.String(),
					to.Version.String(),
					fmt.Sprintf("%s -> %s", humanize.IBytes(from.Size), humanize.IBytes(to.Size)),
					humanize.RelTime(from.Published, to.Published, "later", "earlier"),
				})
			}

			out, err := renderTable([]string{"FROM", "TO", "SIZE", "GAP"}, rows)
			if err != nil {
				return err
			}
			fmt.Print(out)

			return nil
		},
	}
}

func chainCommand() *cli.Command {
	return &cli.Command{
		Name:  "chain",
		Usage: "flatten per-channel feed shards, skipping empty ones",
		Action: func(_ *cli.Context) error {
			feed := buildFeed(time.Now())

			byChannel := lo.GroupBy(feed.ToSlice(), func(r release) string { return r.Channel })
			channels := []string{channelArchive, channelStable, channelBeta, channelNightly}

			shards := make([]*lists.ArrayList[release], 0, len(channels))
			for _, ch := range channels {
				shard := lists.NewArrayList[release](len(byChannel[ch]))
				shard.Add(byChannel[ch]...)
				if shard.IsEmpty() {
					slog.Debug("Shard is empty and will be skipped", "channel", ch)
				}
				shards = append(shards, shard)
			}

			flat := views.Chain[release, *lists.ArrayList[release]](views.Of(shards...))
			slog.Info("Chained shards", "shards", len(shards), "releases", flat.Size(), "empty", flat.IsEmpty())

			var rows [][]string
			for it := range views.Enumerate[release](flat).Values() {
				r := it.Val
				rows = append(rows, []string{
					strconv.Itoa(it.Pos),
					r.Version.String(),
					paintChannel(r.Channel),
					humanize.IBytes(r.Size),
					humanize.Time(r.Published),
				})
			}

			out, err := renderTable([]string{"#", "VERSION", "CHANNEL", "SIZE", "PUBLISHED"}, rows)
			if err != nil {
				return err
			}
			fmt.Print(out)

			return nil
		},
	}
}
