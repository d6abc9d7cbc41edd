package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"BeanLedger/internal/ingestion"
	"BeanLedger/internal/model"
	"BeanLedger/internal/observability"
	"BeanLedger/internal/query"

	ingestv1 "BeanLedger/gen/go/beanledger/ingest/v1"
	queryv1 "BeanLedger/gen/go/beanledger/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	QueryService  *query.Service
	IngestService *ingestion.GRPCIngestService
	HealthChecker *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{svc: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	svc *query.Service
}

func (s *queryServiceImpl) GetLots(ctx context.Context, req *queryv1.GetLotsRequest) (*queryv1.GetLotsResponse, error) {
	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	lots, err := s.svc.GetLots(ctx, req.Account)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get lots: %v", err)
	}

	resp := &queryv1.GetLotsResponse{Account: lots.Account}
	for _, lot := range lots.Lots {
		resp.Lots = append(resp.Lots, &queryv1.Lot{
			Currency:     lot.Currency,
			Units:        lot.Units,
			CostNumber:   lot.CostNumber,
			CostCurrency: lot.CostCurrency,
			CostDate:     lot.CostDate,
			CostLabel:    lot.CostLabel,
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) GetBalances(ctx context.Context, req *queryv1.GetBalancesRequest) (*queryv1.GetBalancesResponse, error) {
	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	balances, err := s.svc.GetBalances(ctx, req.Account)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get balances: %v", err)
	}

	resp := &queryv1.GetBalancesResponse{Account: balances.Account}
	for _, p := range balances.Positions {
		resp.Positions = append(resp.Positions, &queryv1.Position{
			Currency: p.Currency,
			Units:    p.Units,
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) ListAccounts(ctx context.Context, req *queryv1.ListAccountsRequest) (*queryv1.ListAccountsResponse, error) {
	accounts, err := s.svc.ListAccounts(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list accounts: %v", err)
	}
	return &queryv1.ListAccountsResponse{Accounts: accounts}, nil
}

func (s *queryServiceImpl) GetPriceAt(ctx context.Context, req *queryv1.GetPriceAtRequest) (*queryv1.GetPriceAtResponse, error) {
	if req.Currency == "" {
		return nil, status.Error(codes.InvalidArgument, "currency is required")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid date: %v", err)
	}

	price, err := s.svc.GetPriceAt(ctx, req.Currency, date)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get price: %v", err)
	}
	if price == nil {
		return nil, status.Errorf(codes.NotFound, "no price for %s at %s", req.Currency, req.Date)
	}

	return &queryv1.GetPriceAtResponse{
		Currency:      price.Currency,
		Date:          price.Date,
		Number:        price.Number,
		QuoteCurrency: price.QuoteCurrency,
	}, nil
}

func (s *queryServiceImpl) ListDirectives(ctx context.Context, req *queryv1.ListDirectivesRequest) (*queryv1.ListDirectivesResponse, error) {
	if req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	page, err := s.svc.ListDirectives(ctx, req.RunId, req.FromSequence, int(req.PageSize))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list directives: %v", err)
	}

	resp := &queryv1.ListDirectivesResponse{
		RunId:        page.RunID,
		NextSequence: page.NextSequence,
	}
	for _, d := range page.Directives {
		resp.Directives = append(resp.Directives, &queryv1.BookedDirective{
			RunId:     d.RunID,
			Sequence:  d.Sequence,
			Date:      d.Date,
			Kind:      d.Kind,
			Payload:   d.Payload,
			BookError: d.BookError,
		})
	}
	return resp, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitDirective(ctx context.Context, req *ingestv1.SubmitDirectiveRequest) (*ingestv1.SubmitDirectiveResponse, error) {
	if len(req.Payload) == 0 {
		return nil, status.Error(codes.InvalidArgument, "payload is required")
	}

	kind, err := s.svc.SubmitDirective(ctx, req.Payload)
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
		}
		return nil, status.Errorf(codes.InvalidArgument, "parse directive: %v", err)
	}

	return &ingestv1.SubmitDirectiveResponse{
		Accepted: true,
		Kind:     kind.String(),
	}, nil
}
