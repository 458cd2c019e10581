package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/groupproof/groupproof/internal/adapter/contract"
	"github.com/groupproof/groupproof/internal/api/grpc"
	"github.com/groupproof/groupproof/internal/api/http"
	"github.com/groupproof/groupproof/internal/api/http/limiter"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// clientLimiterSize is the number of client ips tracked by the inbound rate limiter.
const clientLimiterSize = 100000

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// .env is optional; real environment takes precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		l.Fatalf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if err := conf.Validate(); err != nil {
		l.Fatalf("invalid config: %v", err)
	}
	level, _ := logrus.ParseLevel(conf.LogLevel)
	l.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &netHttp.Client{
		Timeout:   conf.RPCTimeout,
		Transport: limiter.NewRoundTripper(netHttp.DefaultTransport, conf.RPCRateLimit),
	}
	rpcClient, err := rpc.DialOptions(ctx, conf.RPCURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		l.Fatalf("couldn't create rpc client: %v", err)
	}
	ethClient := ethclient.NewClient(rpcClient)
	defer ethClient.Close()

	contractClient, err := contract.NewClient(ethClient, conf.ContractAddress)
	if err != nil {
		l.Fatalf("couldn't create contract client: %v", err)
	}

	c, closeCache, err := newCache(conf, l)
	if err != nil {
		l.Fatalf("couldn't create cache: %v", err)
	}
	defer closeCache()

	reader := contract.NewReader(
		contractClient,
		c,
		l.WithField("component", "contractReader"),
	)
	service := app.NewService(
		reader,
		c,
		l.WithField("component", "service"),
	)

	clientLimiter, err := limiter.NewClientLimiter(
		conf.RateLimitMax,
		conf.RateLimitWindow(),
		clientLimiterSize,
	)
	if err != nil {
		l.Fatalf("couldn't create client rate limiter: %v", err)
	}
	mux := http.NewMux(service, clientLimiter, conf.HTTPRequestTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(service, l.WithField("component", "grpcService"))
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	l.WithFields(logrus.Fields{
		"contract":     conf.ContractAddress,
		"rpc":          conf.RPCURL,
		"cacheBackend": conf.CacheBackend,
		"cacheTTL":     conf.CacheTTL(),
	}).Info("groupproof read service configured")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			l.Errorf("couldn't run http server: %v", err)
			stop()
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Run(ctx); err != nil {
			l.Errorf("couldn't run grpc server: %v", err)
			stop()
		}
	}()
	wg.Wait()
}
