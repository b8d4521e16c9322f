package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/business"
	"bitbucket.org/mmdatafocus/dynamics_connector/config"
	"bitbucket.org/mmdatafocus/dynamics_connector/dynclient"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"golang.org/x/sync/errgroup"
)

var allEntities = []string{
	"vendors",
	"chart-of-accounts",
	"purchase-orders",
	"material-receipts",
	"payment-requests",
	"payment-history",
}

func main() {
	entitiesFlag := flag.String("entities", "all", "Comma-separated entity types to sync: "+strings.Join(allEntities, ",")+" (or 'all')")
	timeout := flag.Duration("timeout", 10*time.Minute, "Overall run timeout")
	useRedis := flag.Bool("redis", false, "Persist watermarks in redis (in-memory otherwise)")
	flag.Parse()

	entities, err := selectEntities(*entitiesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := config.GetLogger()
	settings := config.LoadSettings()
	if settings.CompanyName == "" {
		fmt.Fprintln(os.Stderr, "DYNAMICS_COMPANY_NAME is required")
		os.Exit(1)
	}

	var store syncstate.Store
	if *useRedis {
		config.ConnectRedisWithRetry()
		store = syncstate.NewRedisStore()
	} else {
		logger.Warn("using in-memory watermark store; sync times will not survive this process")
		store = syncstate.NewMemStore()
	}

	client := dynclient.NewClient(settings, logger)
	bc := business.NewContext(client, settings, syncstate.NewService(store), logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	output := struct {
		mu       sync.Mutex
		payloads map[string]any
	}{payloads: map[string]any{}}

	collect := func(entity string, payload any) {
		output.mu.Lock()
		defer output.mu.Unlock()
		output.payloads[entity] = payload
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, entity := range entities {
		entity := entity
		group.Go(func() error {
			out := runEntity(groupCtx, bc, entity)
			if out.IsErr() {
				config.LogError(logger, "connector-sync", "main", entity, fmt.Errorf("%s", out.Error()))
				return fmt.Errorf("%s: %s", entity, out.Error())
			}
			collect(entity, out.Value())
			return nil
		})
	}

	runErr := group.Wait()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output.payloads); err != nil {
		fmt.Fprintf(os.Stderr, "encoding output: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func runEntity(ctx context.Context, bc *business.Context, entity string) result.Result[any] {
	switch entity {
	case "vendors":
		return asAny(bc.GetVendors(ctx))
	case "chart-of-accounts":
		return asAny(bc.GetChartOfAccounts(ctx))
	case "purchase-orders":
		return asAny(bc.GetPurchaseOrders(ctx))
	case "material-receipts":
		return asAny(bc.GetMaterialReceipts(ctx))
	case "payment-requests":
		return asAny(bc.GetPaymentRequests(ctx))
	case "payment-history":
		return asAny(bc.GetPaymentHistory(ctx))
	default:
		return result.Err[any]("unknown entity type " + entity)
	}
}

func asAny[T any](r result.Result[[]T]) result.Result[any] {
	return result.Map(r, func(items []T) any { return items })
}

func selectEntities(csv string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(csv), "all") {
		return allEntities, nil
	}
	known := map[string]bool{}
	for _, entity := range allEntities {
		known[entity] = true
	}
	var selected []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !known[part] {
			return nil, fmt.Errorf("unknown entity type %q (valid: %s)", part, strings.Join(allEntities, ","))
		}
		selected = append(selected, part)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no entity types selected")
	}
	return selected, nil
}
