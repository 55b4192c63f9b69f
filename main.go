package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"github.com/coolsulting/cooling_load_calc_go/cooling_load_calc"
	"github.com/gorilla/handlers"
)

func main() {
	var house_data string
	flag.StringVar(&house_data, "i", "", "計算を実行するJSON/YAMLファイル（またはURL）")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", "", "出力フォルダ")

	var config_path string
	flag.StringVar(&config_path, "c", "", "設定ファイル（TOML）。存在しない場合は既定値で作成します。")

	var catalog_path string
	flag.StringVar(&catalog_path, "catalog", "", "機器カタログCSVファイル。設定ファイルの指定より優先します。")

	var serve_addr string
	flag.StringVar(&serve_addr, "serve", "", "計算APIを起動するアドレス（例 :8080）")

	var pprpf_enable bool
	flag.BoolVar(&pprpf_enable, "pprof", false, "プロファイリングを実行し、cpu.prof ファイルに保存します。")

	// 引数を受け取る
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if house_data == "" && serve_addr == "" {
		log.Fatal("-i または -serve オプションを指定してください。")
	}

	cfg := cooling_load_calc.DefaultConfig()
	if config_path != "" {
		var err error
		cfg, err = cooling_load_calc.LoadConfig(config_path)
		if err != nil {
			log.Fatal(err)
		}
	}
	if catalog_path != "" {
		cfg.CatalogFile = catalog_path
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal(err)
	}

	if serve_addr != "" {
		router := cooling_load_calc.NewRouter(cfg, catalog, logger)
		logger.Info("calculation API listening", "addr", serve_addr)
		log.Fatal(http.ListenAndServe(serve_addr, handlers.LoggingHandler(os.Stdout, router)))
	}

	if pprpf_enable {
		f, err := os.Create("cpu.prof")
		if err != nil {
			panic(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				panic(err)
			}
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	if _, err := cooling_load_calc.Run(
		logger,
		house_data,
		output_data_dir,
		cfg,
		catalog,
	); err != nil {
		logger.Error("calculation failed", "error", err)
		os.Exit(1)
	}

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
