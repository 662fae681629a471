package database

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/description"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// MongoDBClient owns the process-wide MongoDB connection and tracks whether it
// can currently serve requests.
type MongoDBClient struct {
	Client *mongo.Client
	state  *connTracker
}

// NewMongoDBClient connects and pings the primary. The returned client keeps
// its ready state current from the driver's topology events.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	tracker := newConnTracker()
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerMonitor(tracker.serverMonitor())

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		tracker.set(contract.ConnDisconnected)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping the primary to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		tracker.set(contract.ConnDisconnected)
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	tracker.set(contract.ConnConnected)

	log.Println("Successfully connected to MongoDB!")
	return &MongoDBClient{Client: client, state: tracker}, nil
}

var _ contract.IReadiness = (*MongoDBClient)(nil)

// State returns the current connection state.
func (m *MongoDBClient) State() contract.ConnState {
	return m.state.get()
}

// Database returns a handle for the named database.
func (m *MongoDBClient) Database(name string) *mongo.Database {
	return m.Client.Database(name)
}

// Disconnect closes the connection pool.
func (m *MongoDBClient) Disconnect() {
	m.state.close()
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := m.Client.Disconnect(ctx); err != nil {
		log.Printf("Error closing MongoDB connection: %v\n", err)
	} else {
		log.Println("MongoDB connection closed.")
	}
	m.state.set(contract.ConnDisconnected)
}

// connTracker is driven by topology changes from the driver's monitor
// goroutines and read on every request. The store counts as connected while
// the topology has a server that accepts writes, so an unreachable secondary
// does not take the API down.
type connTracker struct {
	state  atomic.Int32
	closed atomic.Bool
}

func newConnTracker() *connTracker {
	t := &connTracker{}
	t.state.Store(int32(contract.ConnConnecting))
	return t
}

func (t *connTracker) get() contract.ConnState {
	return contract.ConnState(t.state.Load())
}

func (t *connTracker) set(s contract.ConnState) {
	t.state.Store(int32(s))
}

func (t *connTracker) close() {
	t.closed.Store(true)
	t.set(contract.ConnDisconnecting)
}

func (t *connTracker) topologyChanged(topo description.Topology) {
	if t.closed.Load() {
		return
	}
	t.set(stateOf(topo))
}

// stateOf reports connected when a writable server is known, connecting while
// servers are still undiscovered, and disconnected once checks have failed.
func stateOf(topo description.Topology) contract.ConnState {
	failed := false
	for _, srv := range topo.Servers {
		switch srv.Kind {
		case description.Standalone, description.RSPrimary, description.Mongos, description.LoadBalancer:
			return contract.ConnConnected
		}
		if srv.LastError != nil {
			failed = true
		}
	}
	if failed || len(topo.Servers) == 0 {
		return contract.ConnDisconnected
	}
	return contract.ConnConnecting
}

func (t *connTracker) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyDescriptionChanged: func(e *event.TopologyDescriptionChangedEvent) {
			t.topologyChanged(e.NewDescription)
		},
	}
}
