package internal

import (
	"io"
	"strings"

	esv7 "github.com/elastic/go-elasticsearch/v7"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
)

// NewElasticSearch instantiates the ElasticSearch client using configuration defined in environment variables.
func NewElasticSearch(conf *envvar.Configuration) (*esv7.Client, error) {
	cfg := esv7.Config{}

	if urls, _ := conf.Get("ELASTICSEARCH_URL"); urls != "" {
		cfg.Addresses = strings.Split(urls, ",")
	}

	es, err := esv7.NewClient(cfg)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "elasticsearch.NewClient")
	}

	res, err := es.Info()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "es.Info")
	}
	defer res.Body.Close()

	_, _ = io.Copy(io.Discard, res.Body)

	if res.IsError() {
		return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "es.Info %d", res.StatusCode)
	}

	return es, nil
}
