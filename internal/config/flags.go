package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (sqlite file path)
//	-vault-dir base directory of the PDF vault
//	-billing-url billing platform base URL
//	-billing-timeout billing request timeout (e.g., "15s")
//	-catalog-attempts catalog load attempt ceiling
//	-catalog-retry-delay delay between catalog load attempts
//	-listener-interval transaction listener poll interval
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var vaultDir string
	var billingURL string
	var billingTimeout time.Duration
	var catalogAttempts int
	var catalogRetryDelay time.Duration
	var listenerInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&vaultDir, "vault-dir", "", "Vault base directory")
	flag.StringVar(&billingURL, "billing-url", "", "Billing platform base URL")
	flag.DurationVar(&billingTimeout, "billing-timeout", 0, "Billing request timeout (e.g., 15s)")
	flag.IntVar(&catalogAttempts, "catalog-attempts", 0, "Catalog load attempt ceiling")
	flag.DurationVar(&catalogRetryDelay, "catalog-retry-delay", 0, "Delay between catalog load attempts")
	flag.DurationVar(&listenerInterval, "listener-interval", 0, "Transaction listener poll interval")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				VaultDir: vaultDir,
			},
		},
		Billing: Billing{
			BaseURL:              billingURL,
			RequestTimeout:       billingTimeout,
			CatalogAttempts:      catalogAttempts,
			CatalogRetryDelay:    catalogRetryDelay,
			ListenerPollInterval: listenerInterval,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
