package connection

import (
	"context"
	"fmt"
	"net/url"
	"time"

	dbMonitoring "github.com/Jacobbrewer1/foxfire/pkg/dataaccess/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pingTimeout bounds the initial connectivity check.
const pingTimeout = 5 * time.Second

// MongoDB describes how to reach the panel store. ConnectionString wins when set, otherwise it
// is built from the parts.
type MongoDB struct {
	ConnectionString string
	Username         string
	Password         string
	Host             string
	Port             string
	Args             string
}

// Enabled reports whether there is anything to connect to.
func (m *MongoDB) Enabled() bool {
	return m.ConnectionString != "" || m.Host != ""
}

// GenerateConnectionString builds ConnectionString from the parts. A host without a port is
// looked up as an SRV record, which carries the ports itself.
func (m *MongoDB) GenerateConnectionString() {
	u := &url.URL{
		Scheme:   "mongodb+srv",
		Host:     m.Host,
		Path:     "/",
		RawQuery: m.Args,
	}

	if m.Port != "" {
		u.Scheme = "mongodb"
		u.Host = m.Host + ":" + m.Port
	}

	if m.Username != "" && m.Password != "" {
		u.User = url.UserPassword(m.Username, m.Password)
	} else if m.Username != "" {
		u.User = url.User(m.Username)
	}

	m.ConnectionString = u.String()
}

// Connect opens a client and pings the primary before returning it.
func (m *MongoDB) Connect(ctx context.Context) (*mongo.Client, error) {
	if m.ConnectionString == "" {
		m.GenerateConnectionString()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(m.ConnectionString).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		// The client holds pooled connections even when the ping fails.
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Ping checks that the primary is reachable, recording the request in the mongo metrics.
func Ping(ctx context.Context, client *mongo.Client) error {
	t := prometheus.NewTimer(dbMonitoring.MongoLatency.WithLabelValues("health_check", "ping", "-", "-"))
	defer t.ObserveDuration()
	dbMonitoring.MongoTotalRequests.WithLabelValues("health_check", "ping", "-", "-").Inc()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("error pinging mongo: %w", err)
	}
	return nil
}
