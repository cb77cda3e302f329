package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/logger"
	natsstore "github.com/emony/landing/internal/nats"
	"github.com/emony/landing/internal/submit"
	"github.com/spf13/cobra"
)

var leadsFlags struct {
	kind  string
	limit int
	json  bool
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List stored leads",
	Long: `List the leads stored by the nats or redis sink, oldest first.

The store is taken from the configured sink; with the simulated or http
sink the embedded NATS store in the data directory is read.`,
	RunE: runLeads,
}

func init() {
	leadsCmd.Flags().StringVarP(&leadsFlags.kind, "kind", "k", "", "Only list one funnel (loan, tester)")
	leadsCmd.Flags().IntVarP(&leadsFlags.limit, "limit", "n", 0, "Maximum leads to list, 0=all")
	leadsCmd.Flags().BoolVar(&leadsFlags.json, "json", false, "Print one JSON object per line")
}

func runLeads(cmd *cobra.Command, args []string) error {
	var kinds []string
	if leadsFlags.kind != "" {
		k, err := funnel.ParseKind(leadsFlags.kind)
		if err != nil {
			return err
		}
		kinds = []string{k.String()}
	}

	ctx := cmd.Context()
	var leads []submit.Lead

	if cfg.Sink == submit.SinkRedis {
		sink := submit.NewRedisSink(cfg.RedisAddr)
		defer func() { _ = sink.Close() }()
		if kinds == nil {
			for _, k := range funnel.Kinds {
				kinds = append(kinds, k.String())
			}
		}
		for _, k := range kinds {
			got, err := sink.List(ctx, k)
			if err != nil {
				return err
			}
			leads = append(leads, got...)
		}
		sort.SliceStable(leads, func(i, j int) bool { return leads[i].CreatedAt.Before(leads[j].CreatedAt) })
		if leadsFlags.limit > 0 && len(leads) > leadsFlags.limit {
			leads = leads[:leadsFlags.limit]
		}
	} else {
		emb, err := natsstore.Open(filepath.Join(cfg.DataDir, "nats"))
		if err != nil {
			return fmt.Errorf("failed to start nats: %w", err)
		}
		defer func() {
			if err := emb.Close(); err != nil {
				logger.Warn("closing nats: %v", err)
			}
		}()

		sink, err := submit.NewJetStreamSink(ctx, emb.JS)
		if err != nil {
			return err
		}
		kind := ""
		if len(kinds) == 1 {
			kind = kinds[0]
		}
		if leads, err = sink.List(ctx, kind, leadsFlags.limit); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if leadsFlags.json {
		enc := json.NewEncoder(out)
		for _, l := range leads {
			if err := enc.Encode(l); err != nil {
				return err
			}
		}
		return nil
	}

	if len(leads) == 0 {
		fmt.Fprintln(out, "No leads yet.")
		return nil
	}
	for _, l := range leads {
		fmt.Fprintf(out, "%s  %-6s  %-8s  %s  %s\n",
			l.ID, l.Kind, l.Variant, l.CreatedAt.Local().Format(time.DateTime), summarize(l.Fields))
	}
	return nil
}

// summarize joins the fields of a lead as key=value pairs in a stable order.
func summarize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return strings.Join(parts, " ")
}
