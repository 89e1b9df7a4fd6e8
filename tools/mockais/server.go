// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/NVIDIA/aisclient/dbdriver"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tinylib/msgp/msgp"
	"github.com/valyala/fasthttp"
)

const serverName = "aismock"

type (
	Server struct {
		config *Config
		db     dbdriver.Driver
		stats  *stats
		xacts  *xactTable
		srv    *fasthttp.Server
		ln     net.Listener
		url    string
		done   chan error
		stop   sync.Once
		errs   error      // upon Stop
		mu     sync.Mutex // serializes bucket and object metadata updates
	}

	// request context: parsed URL items and the action message (if any)
	apiRequest struct {
		ctx    *fasthttp.RequestCtx
		method string
		path   string
		items  []string // URL path items after /v1/<resource>
	}
)

// New creates the gateway along with its KV store (buntdb, file or in-memory)
func New(config *Config) (*Server, error) {
	config, err := validConfig(config)
	if err != nil {
		return nil, err
	}
	path := config.DBPath
	if path == "" {
		path = dbdriver.InMemory
	}
	db, err := dbdriver.NewBuntDB(path)
	if err != nil {
		return nil, err
	}
	return newServer(config, db), nil
}

// NewWithDriver is used by tests that want to provide their own store (e.g. dbdriver.DBMock);
// nil config means defaults
func NewWithDriver(config *Config, db dbdriver.Driver) (*Server, error) {
	config, err := validConfig(config)
	if err != nil {
		return nil, err
	}
	return newServer(config, db), nil
}

func validConfig(config *Config) (*Config, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return config, config.Validate()
}

func newServer(config *Config, db dbdriver.Driver) *Server {
	s := &Server{config: config, db: db, stats: newStats(), done: make(chan error, 1)}
	s.xacts = newXactTable(s)
	s.srv = &fasthttp.Server{
		Handler:            s.handle,
		Name:               serverName,
		MaxRequestBodySize: config.MaxBodySize,
		CloseOnShutdown:    true,
		Logger:             fasthttpLogger{},
	}
	return s
}

// Start listens on the configured address and serves in the background;
// use URL() to get the resulting endpoint
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return err
	}
	s.ln = ln
	s.url = "http://" + ln.Addr().String()
	go func() {
		s.done <- s.srv.Serve(ln)
	}()
	nlog.Infof("%s[%s]: listening on %s", serverName, s.config.NodeID, s.url)
	return nil
}

// Stop aborts running jobs, shuts down the server, and closes the store.
// Subsequent calls return the result of the first one.
func (s *Server) Stop() error {
	s.stop.Do(func() { s.errs = s._stop() })
	return s.errs
}

func (s *Server) _stop() error {
	s.xacts.abortAll(errors.New("gateway shutdown"))
	err := s.srv.Shutdown()
	if s.ln != nil {
		if errServe := <-s.done; err == nil {
			err = errServe
		}
	}
	s.xacts.wait()
	if errDB := s.db.Close(); err == nil {
		err = errDB
	}
	nlog.Flush()
	return err
}

func (s *Server) URL() string                    { return s.url }
func (s *Server) Config() *Config                { return s.config }
func (s *Server) Registry() *prometheus.Registry { return s.stats.reg }

// Counter returns the requests counter for a given op (OpList, OpPut, ...)
func (s *Server) Counter(op string) prometheus.Counter { return s.stats.reqs.WithLabelValues(op) }

//
// routing
//

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	var (
		path   = string(ctx.Path())
		method = string(ctx.Method())
		items  = strings.Split(strings.Trim(path, "/"), "/")
	)
	ctx.Response.Header.Set(apc.HdrNodeID, s.config.NodeID)
	if path == apc.URLPathMetrics.S {
		s.stats.hdl(ctx)
		return
	}
	if len(items) < 2 || items[0] != apc.Version {
		s.writeErr(ctx, fmt.Errorf("invalid URL path %q", path), http.StatusBadRequest)
		return
	}
	apireq := &apiRequest{ctx: ctx, method: method, path: path, items: items[2:]}
	if items[1] != apc.Health && s.config.AuthSecret != "" {
		if err := s.checkToken(ctx); err != nil {
			s.writeErr(ctx, err, http.StatusUnauthorized)
			return
		}
	}
	if s.config.Verbose {
		nlog.Infoln(method, path, ctx.QueryArgs().String())
	}
	switch items[1] {
	case apc.Buckets:
		s.bucketHandler(apireq)
	case apc.Objects:
		s.objectHandler(apireq)
	case apc.Cluster:
		s.clusterHandler(apireq)
	case apc.Health:
		ctx.SetStatusCode(http.StatusOK)
	default:
		s.writeErr(ctx, fmt.Errorf("unsupported resource %q", items[1]), http.StatusBadRequest)
	}
}

func (s *Server) checkToken(ctx *fasthttp.RequestCtx) error {
	token, err := tokenFromHeader(string(ctx.Request.Header.Peek(cos.HdrAuthorization)))
	if err != nil {
		return err
	}
	_, err = ValidateToken(token, s.config.AuthSecret)
	return err
}

//
// request helpers
//

// bucket from the URL path item and query (provider, namespace)
func (a *apiRequest) bck() (cmn.Bck, error) {
	if len(a.items) == 0 || a.items[0] == "" {
		return cmn.Bck{}, cmn.NewErrInvalidBckName("")
	}
	bck := cmn.Bck{
		Name:     a.items[0],
		Provider: string(a.ctx.QueryArgs().Peek(apc.QparamProvider)),
		Ns:       cmn.ParseNsUname(string(a.ctx.QueryArgs().Peek(apc.QparamNamespace))),
	}
	provider, err := cmn.NormalizeProvider(bck.Provider)
	if err != nil {
		return bck, err
	}
	bck.Provider = provider
	if err := bck.Validate(); err != nil {
		return bck, err
	}
	return bck, nil
}

func (a *apiRequest) objName() string {
	if len(a.items) < 2 {
		return ""
	}
	return strings.Join(a.items[1:], "/")
}

// action message from the request body; empty body - empty message
func (a *apiRequest) actMsg() (*apc.ActMsg, error) {
	msg := &apc.ActMsg{}
	body := a.ctx.PostBody()
	if len(body) == 0 {
		return msg, nil
	}
	if err := cos.JSON.Unmarshal(body, msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action message: %w", err)
	}
	return msg, nil
}

//
// responses
//

func errStatus(err error) int {
	var (
		errInvalidObj *cos.ErrInvalidObjName
		errInvalidPfx *cos.ErrInvalidPrefix
		errSrc        *errPromoteSrc
	)
	switch {
	case cmn.IsErrBckNotFound(err), cmn.IsErrObjNotFound(err), cmn.IsErrXactNotFound(err):
		return http.StatusNotFound
	case cmn.IsErrInvalidBckName(err), errors.As(err, &errInvalidObj), errors.As(err, &errInvalidPfx), errors.As(err, &errSrc):
		return http.StatusBadRequest
	case cmn.IsErrBckAlreadyExists(err):
		return http.StatusConflict
	case errors.Is(err, ErrNoToken), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// writes JSON-formatted cmn.ErrHTTP; HEAD responses carry the message in the header
func (s *Server) writeErr(ctx *fasthttp.RequestCtx, err error, status int) {
	var (
		method = string(ctx.Method())
		herr   = cmn.NewErrHTTP(method, string(ctx.Path()), err, status)
	)
	herr.Node = s.config.NodeID
	herr.RemoteAddr = ctx.RemoteAddr().String()
	s.stats.inc(OpErr)
	if s.config.Verbose || status >= http.StatusInternalServerError {
		nlog.ErrorDepth(1, herr.Error())
	}
	ctx.ResetBody()
	ctx.SetStatusCode(status)
	if method == http.MethodHead {
		ctx.Response.Header.Set(cos.HdrError, herr.Message)
		if herr.TypeCode != "" {
			ctx.Response.Header.Set(apc.HdrErrTcode, herr.TypeCode)
		}
		return
	}
	ctx.SetContentType(cos.ContentJSON)
	ctx.SetBody(cos.MustMarshal(herr))
}

func (s *Server) writeErrAuto(ctx *fasthttp.RequestCtx, err error) {
	s.writeErr(ctx, err, errStatus(err))
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	ctx.SetContentType(cos.ContentJSON)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(cos.MustMarshal(v))
}

func writeMsgPack(ctx *fasthttp.RequestCtx, v msgp.Encodable) error {
	ctx.SetContentType(cos.ContentMsgPack)
	ctx.SetStatusCode(http.StatusOK)
	w := msgp.NewWriterSize(ctx, 16*cos.KiB)
	if err := v.EncodeMsg(w); err != nil {
		return err
	}
	return w.Flush()
}

type fasthttpLogger struct{}

func (fasthttpLogger) Printf(format string, args ...any) { nlog.Warningf(format, args...) }
