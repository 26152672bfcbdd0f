package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/ethicalfolio-backend/internal/adapter/presenter"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/audience"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/riskdial"
)

// Server implements the EthicalFolioService gRPC server
type Server struct {
	ChartService  *chart.ChartService
	DialService   *riskdial.DialService
	MatrixService *audience.MatrixService

	// Geometry is used when a request does not carry its own radii
	Geometry ringlayout.Geometry
}

// NewServer creates a new gRPC server instance
func NewServer(
	chartService *chart.ChartService,
	dialService *riskdial.DialService,
	matrixService *audience.MatrixService,
	geometry ringlayout.Geometry,
) *Server {
	return &Server{
		ChartService:  chartService,
		DialService:   dialService,
		MatrixService: matrixService,
		Geometry:      geometry,
	}
}

// GetSectorRing handles the GetSectorRing RPC.
// Request fields: profile, active_id, outer_radius, inner_radius.
func (s *Server) GetSectorRing(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	profile, err := profileField(req)
	if err != nil {
		return nil, err
	}

	g := s.Geometry
	if v, ok := numberField(req, "outer_radius"); ok {
		g.OuterRadius = v
	}
	if v, ok := numberField(req, "inner_radius"); ok {
		g.InnerRadius = v
	}

	result, err := s.ChartService.SectorRing(ctx, profile, g, domain.ActiveSelection(stringField(req, "active_id")))
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(presenter.Ring(result))
}

// TransitionSelection handles the TransitionSelection RPC. It applies one
// pointer event to the given state and returns the next state without storing anything.
// Request fields: active_id, type, id.
func (s *Server) TransitionSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	event := domain.SelectionEvent{
		Type: domain.SelectionEventType(strings.ToUpper(stringField(req, "type"))),
		ID:   stringField(req, "id"),
	}
	if err := event.Validate(); err != nil {
		return nil, mapError(err)
	}

	next := domain.ActiveSelection(stringField(req, "active_id")).Apply(event)

	return toStruct(map[string]any{
		"active_id": next.ActiveID,
		"idle":      next.IsIdle(),
	})
}

// GetRiskDial handles the GetRiskDial RPC.
// Request fields: profile, hovered_id.
func (s *Server) GetRiskDial(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	profile, err := profileField(req)
	if err != nil {
		return nil, err
	}

	result, err := s.DialService.Dial(ctx, profile, domain.ActiveSelection(stringField(req, "hovered_id")))
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(presenter.Dial(result))
}

// GetAudienceMatrix handles the GetAudienceMatrix RPC.
// Request fields: selected_id.
func (s *Server) GetAudienceMatrix(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.MatrixService.Matrix(ctx, domain.ActiveSelection(stringField(req, "selected_id")))
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(presenter.Matrix(result))
}

// profileField reads the profile field, defaulting to the default profile when absent
func profileField(req *structpb.Struct) (domain.ProfileKey, error) {
	raw := stringField(req, "profile")
	if raw == "" {
		return domain.DefaultProfile, nil
	}
	profile, err := domain.ParseProfileKey(raw)
	if err != nil {
		return "", status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return profile, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func numberField(req *structpb.Struct, key string) (float64, bool) {
	v, ok := req.GetFields()[key]
	if !ok {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return n.NumberValue, true
}

// toStruct converts a JSON view into a Struct message
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidSelectionEvent):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrLayoutPrecondition):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
