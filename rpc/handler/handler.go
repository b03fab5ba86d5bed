// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/schedule"
)

// defaults for the jobs listing
const (
	defaultCount = 10
	maximumCount = 100
)

// Handler - HTTP endpoints served by the https listener
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Jobs(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// Status - node state shown by details and jobs
type Status interface {
	Contract() account.Name
	PendingJobs() ([]schedule.Job, error)
}

type httpHandler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	status             Status
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - handler sharing the JSON-RPC server with the TLS listener
func New(
	log *logger.L,
	server *rpc.Server,
	status Status,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		status:             status,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the access lists, keyed by endpoint name
func (h *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - anything not matched
func (h *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// RPC - POST a single JSON-RPC request
func (h *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	if nil == r.Body {
		sendInternalServerError(w)
		return
	}

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - summary of the node
type DetailsReply struct {
	Chain       string `json:"chain"`
	Mode        string `json:"mode"`
	Contract    string `json:"contract"`
	PendingJobs int    `json:"pendingJobs"`
	RPCs        uint64 `json:"rpcs"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
}

// Details - GET node summary, restricted by the "details" allow list
func (h *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.accept(w, r, "details") {
		return
	}
	defer h.count.Decrement()

	jobs, err := h.status.PendingJobs()
	if nil != err {
		sendInternalServerError(w)
		return
	}

	reply := DetailsReply{
		Chain:       mode.ChainName(),
		Mode:        mode.String(),
		Contract:    h.status.Contract().String(),
		PendingJobs: len(jobs),
		RPCs:        h.count.Uint64(),
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
	}

	sendReply(w, reply)
}

// JobEntry - one scheduled job
type JobEntry struct {
	Due       uint64 `json:"due"`
	RequestID string `json:"requestId"`
	Operation string `json:"operation"`
	Symbol    string `json:"symbol"`
}

// Jobs - GET pending scheduled jobs, restricted by the "jobs" allow list
//
// query parameters:
//   count=<int>    [1..100  default: 10]
func (h *httpHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	if !h.accept(w, r, "jobs") {
		return
	}
	defer h.count.Decrement()

	count := defaultCount
	if err := r.ParseForm(); nil == err {
		n, err := strconv.Atoi(r.Form.Get("count"))
		if nil == err && n >= 1 && n <= maximumCount {
			count = n
		}
	}

	jobs, err := h.status.PendingJobs()
	if nil != err {
		sendInternalServerError(w)
		return
	}
	if len(jobs) > count {
		jobs = jobs[:count]
	}

	entries := make([]JobEntry, 0, len(jobs))
	for _, job := range jobs {
		entries = append(entries, JobEntry{
			Due:       job.Due,
			RequestID: job.RequestID.String(),
			Operation: job.Operation.String(),
			Symbol:    job.Symbol.String(),
		})
	}

	sendReply(w, entries)
}

// checks method, allow list and connection limit; on success the
// caller must decrement the count
func (h *httpHandler) accept(w http.ResponseWriter, r *http.Request, name string) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.isAllowed(name, r.RemoteAddr) {
		h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, name)
		sendForbidden(w)
		return false
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *httpHandler) isAllowed(name string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()

	for _, cidr := range h.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
