package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/statusgrab/statusgrab/internal/cache"
	"github.com/statusgrab/statusgrab/internal/config"
	"github.com/statusgrab/statusgrab/internal/handlers"
	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/resolvers/twitter"
	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/valyala/fasthttp"
)

var cfg config.Config

func main() {
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)

	var transport http.RoundTripper

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}

	apiClient := http.Client{
		Timeout:   time.Duration(cfg.Resolver.Timeout),
		Transport: transport,
	}

	// no overall timeout: this client streams whole videos through the
	// download endpoint
	streamClient := http.Client{
		Transport: transport,
	}

	resolverList := []resolvers.IResolver{
		twitter.New(&apiClient, cfg.Resolver.BaseURL, cfg.Resolver.UserAgent),
	}

	videoCache := cache.New(cfg.Cache.RedisAddr, time.Duration(cfg.Cache.TTL))

	handler := handlers.NewHandler(resolverList, videoCache, &streamClient, cfg.UI)

	srv := &fasthttp.Server{
		Handler:      handler.Route,
		Name:         "statusgrab",
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	go func() {
		utils.Log.Infof("HTTP server on %s", cfg.Server.Addr)
		utils.Log.Fatal(srv.ListenAndServe(cfg.Server.Addr))
	}()

	utils.Log.Info("Everything is running")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal
}
