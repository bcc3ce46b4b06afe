package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"syslang/internal/language"
	"syslang/internal/locale"
	"syslang/internal/logging"
	"syslang/internal/preferences"
)

// ErrAlreadyRunning reports that another server holds the socket lock.
var ErrAlreadyRunning = errors.New("another syslang server is already running")

// Server answers RPC calls on a Unix domain socket.
type Server struct {
	path      string
	lock      *flock.Flock
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	done  bool
}

// NewServer acquires the socket lock, binds the socket at path, and registers
// the service. The lock file lives at path + ".lock".
func NewServer(ctx context.Context, path string, detector *locale.Detector, store *preferences.Store, logger *slog.Logger) (*Server, error) {
	if detector == nil {
		return nil, errors.New("ipc server requires a detector")
	}
	if store == nil {
		return nil, errors.New("ipc server requires a preference store")
	}
	logger = logging.NewComponentLogger(logger, "ipc")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire socket lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	release := func() { _ = lock.Unlock() }

	if err := os.RemoveAll(path); err != nil {
		release()
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		release()
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	svc := &service{detector: detector, store: store, logger: logger}
	if err := rpcServer.RegisterName(ServiceName, svc); err != nil {
		_ = listener.Close()
		release()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		lock:      lock,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
		conns:     make(map[net.Conn]struct{}),
	}, nil
}

// Path returns the socket path.
func (s *Server) Path() string {
	return s.path
}

// Serve accepts connections in the background until Close or until the
// parent context is canceled.
func (s *Server) Serve() {
	s.logger.Info("rpc server listening",
		logging.String("socket", s.path),
		logging.String(logging.FieldEventType, "ipc_listening"))
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		<-s.ctx.Done()
		_ = s.listener.Close()
	}()
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				logging.WarnWithContext(s.logger, "accept failed", "ipc_accept_failed",
					logging.Error(err),
					logging.String(logging.FieldImpact, "rpc clients may fail to connect"),
					logging.String(logging.FieldErrorHint, "check socket permissions and restart syslang serve"))
				continue
			}
			if !s.track(conn) {
				_ = conn.Close()
				return
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				defer s.untrack(c)
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops accepting, hangs up on open connections, removes the socket,
// and releases the lock.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.mu.Lock()
	s.done = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		logging.WarnWithContext(s.logger, "failed to remove socket", "ipc_socket_cleanup_failed",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "stale socket may block future starts"),
			logging.String(logging.FieldErrorHint, "remove the socket file manually"))
	}
	if err := s.lock.Unlock(); err != nil {
		logging.WarnWithContext(s.logger, "failed to release socket lock", "ipc_unlock_failed",
			logging.String("lock", s.lock.Path()),
			logging.Error(err))
	}
}

// track registers conn for Close. It reports false once Close has begun.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

type service struct {
	detector *locale.Detector
	store    *preferences.Store
	logger   *slog.Logger
}

// request returns a logger tagged with a fresh correlation ID.
func (s *service) request(method string) *slog.Logger {
	ctx := logging.WithRequestID(context.Background(), uuid.NewString())
	return logging.WithContext(ctx, s.logger).With(logging.String("method", method))
}

func (s *service) GetSystemLanguage(req SystemLanguageRequest, resp *SystemLanguageResponse) error {
	log := s.request("GetSystemLanguage")
	det := s.detector.Detect()
	resp.Language = det.Tag
	if req.Explain {
		resp.Source = det.Source
		resp.Raw = det.Raw
		resp.Attempts = det.Attempts
	}
	log.Debug("system language served",
		logging.String("language", det.Tag.String()),
		logging.String("source", det.Source),
		logging.String(logging.FieldEventType, "rpc_request"))
	return nil
}

func (s *service) GetInitialLanguage(_ InitialLanguageRequest, resp *InitialLanguageResponse) error {
	log := s.request("GetInitialLanguage")
	initial := preferences.InitialLanguage(s.store, s.detector)
	resp.Language = initial.Tag
	resp.FromPreference = initial.FromPreference
	log.Debug("initial language served",
		logging.String("language", initial.Tag.String()),
		logging.Bool("from_preference", initial.FromPreference),
		logging.String(logging.FieldEventType, "rpc_request"))
	return nil
}

func (s *service) LoadLanguage(_ LoadLanguageRequest, resp *LoadLanguageResponse) error {
	log := s.request("LoadLanguage")
	tag, ok, err := s.store.Load()
	if err != nil {
		logging.ErrorWithContext(log, "load preference failed", "rpc_request_failed", logging.Error(err))
		return err
	}
	resp.Language = tag
	resp.Saved = ok
	log.Debug("preference loaded",
		logging.Bool("saved", ok),
		logging.String(logging.FieldEventType, "rpc_request"))
	return nil
}

func (s *service) SaveLanguage(req SaveLanguageRequest, resp *SaveLanguageResponse) error {
	log := s.request("SaveLanguage")
	tag, ok := language.Parse(req.Language)
	if !ok {
		return fmt.Errorf("%w: %q", preferences.ErrUnsupported, req.Language)
	}
	if err := s.store.Save(tag); err != nil {
		logging.ErrorWithContext(log, "save preference failed", "rpc_request_failed", logging.Error(err))
		return err
	}
	resp.Language = tag
	log.Debug("preference saved",
		logging.String("language", tag.String()),
		logging.String(logging.FieldEventType, "rpc_request"))
	return nil
}

func (s *service) ClearLanguage(_ ClearLanguageRequest, resp *ClearLanguageResponse) error {
	log := s.request("ClearLanguage")
	if err := s.store.Clear(); err != nil {
		logging.ErrorWithContext(log, "clear preference failed", "rpc_request_failed", logging.Error(err))
		return err
	}
	resp.Cleared = true
	log.Debug("preference cleared", logging.String(logging.FieldEventType, "rpc_request"))
	return nil
}
