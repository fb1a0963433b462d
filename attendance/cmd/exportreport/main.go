package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/export"
	"tapacademy.com/attendance/config"
)

func main() {
	format := flag.String("format", "csv", "report format: csv or xlsx")
	date := flag.String("date", "", "only export records of this date (YYYY-MM-DD)")
	dir := flag.String("dir", "reports", "local directory used when no report bucket is configured")
	list := flag.Bool("list", false, "list archived reports and exit")
	get := flag.String("get", "", "write the archived report with this key to stdout and exit")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if *list || *get != "" {
		archive, err := export.OpenArchive(ctx, cfg, *dir)
		if err != nil {
			log.Fatal(err)
		}
		if *get != "" {
			if err := archive.ReadFile(ctx, *get, os.Stdout); err != nil {
				log.Fatal(err)
			}
			return
		}
		keys, err := archive.List(ctx)
		if err != nil {
			log.Fatal(err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return
	}

	exporter, err := export.FromConfig(ctx, cfg, *dir)
	if err != nil {
		log.Fatal(err)
	}
	res, err := exporter.Run(ctx, export.Request{Format: *format, Filter: core.RecordFilter{Date: *date}})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] wrote %s (%d rows)", res.Key, res.Rows)
}
