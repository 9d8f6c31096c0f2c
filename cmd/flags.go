package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/selimozcann/RedirectCheck/internal/config"
)

type options struct {
	timeout   int
	headers   []string
	cookie    string
	userAgent string
	proxy     string
	insecure  bool
	color     string
	json      bool
	banner    bool
	verbose   bool
	logLevel  string
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.SortFlags = false
	fs.IntVarP(&opts.timeout, "timeout", "t", config.DefaultTimeoutSeconds, "Request timeout in seconds (0 = no timeout)")
	fs.StringArrayVarP(&opts.headers, "header", "H", nil, "Extra request header as 'Key: Value' (repeatable)")
	fs.StringVar(&opts.cookie, "cookie", "", "Cookie header value")
	fs.StringVar(&opts.userAgent, "user-agent", "", "User-Agent header value")
	fs.StringVar(&opts.proxy, "proxy", "", "HTTP(S) proxy URL (default: from environment)")
	fs.BoolVar(&opts.insecure, "insecure", false, "Skip TLS certificate verification")
	fs.StringVar(&opts.color, "color", "auto", "Color the result line: auto, always or never")
	fs.BoolVar(&opts.json, "json", false, "Print a JSON record instead of the result line")
	fs.BoolVar(&opts.banner, "banner", false, "Print the banner to stderr")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging (same as --log-level debug)")
	fs.StringVar(&opts.logLevel, "log-level", "WARN", "Log level: debug, info, notice, warn, error or fatal")
}

func changedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}

// merge fills every option the user did not set explicitly from s.
func (o *options) merge(s config.Settings, changed map[string]bool) error {
	if o.timeout < 0 {
		return fmt.Errorf("--timeout: %w (got %d)", config.ErrInvalidTimeout, o.timeout)
	}
	if !changed["timeout"] {
		o.timeout = s.TimeoutSeconds
	}
	if !changed["user-agent"] {
		o.userAgent = s.UserAgent
	}
	if !changed["proxy"] {
		o.proxy = s.Proxy
	}
	if !changed["insecure"] {
		o.insecure = s.Insecure
	}
	if !changed["color"] {
		o.color = s.Color
	}
	if !changed["log-level"] {
		o.logLevel = s.LogLevel
	}
	return nil
}
