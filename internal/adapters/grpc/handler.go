package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AnjanaVP231/BMI-Calculator/internal/domain"
	"github.com/AnjanaVP231/BMI-Calculator/internal/ports"
	"github.com/AnjanaVP231/BMI-Calculator/pkg/pb"
)

// BMIServiceHandler implements the gRPC BMIService
type BMIServiceHandler struct {
	pb.UnimplementedBMIServiceServer
	assessor ports.MeasurementAssessor
}

// NewBMIServiceHandler creates a new gRPC handler
func NewBMIServiceHandler(assessor ports.MeasurementAssessor) *BMIServiceHandler {
	return &BMIServiceHandler{
		assessor: assessor,
	}
}

// Evaluate validates the measurement and returns the advice.
// Invalid input yields InvalidArgument with one BadRequest violation per field.
func (h *BMIServiceHandler) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := uuid.NewString()
	logger := log.With().Str("evaluation_id", id).Logger()
	logger.Info().Msg("Evaluate called")

	result, err := h.assessor.Assess(ctx, toRaw(pb.MeasurementRequestFromStruct(req)))

	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		logger.Info().Int("violations", len(verrs)).Msg("invalid measurement")
		return nil, invalidMeasurement(verrs)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, status.FromContextError(err).Err()
	case err != nil:
		logger.Error().Err(err).Msg("failed to assess measurement")
		return nil, status.Error(codes.Internal, "failed to assess measurement")
	}

	return convertResultToProto(id, result).ToStruct(), nil
}

// Validate reports field errors without evaluating; invalid input is not an RPC error
func (h *BMIServiceHandler) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log.Debug().Msg("Validate called")

	err := h.assessor.Check(ctx, toRaw(pb.MeasurementRequestFromStruct(req)))

	var verrs domain.ValidationErrors
	switch {
	case err == nil:
		return (&pb.ValidateResponse{Valid: true}).ToStruct(), nil
	case errors.As(err, &verrs):
		resp := &pb.ValidateResponse{Violations: make([]pb.FieldViolation, len(verrs))}
		for i, fe := range verrs {
			resp.Violations[i] = pb.FieldViolation{
				Field:   string(fe.Field),
				Code:    string(fe.Code),
				Message: fe.Message,
			}
		}
		return resp.ToStruct(), nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, status.FromContextError(err).Err()
	default:
		log.Error().Err(err).Msg("failed to validate measurement")
		return nil, status.Error(codes.Internal, "failed to validate measurement")
	}
}

func toRaw(r *pb.MeasurementRequest) domain.RawMeasurement {
	return domain.RawMeasurement{
		Weight: r.Weight,
		Height: r.Height,
		Age:    r.Age,
	}
}

// invalidMeasurement builds an InvalidArgument status carrying field violations
func invalidMeasurement(verrs domain.ValidationErrors) error {
	br := &errdetails.BadRequest{}
	for _, fe := range verrs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       string(fe.Field),
			Description: fe.Message,
		})
	}

	st := status.New(codes.InvalidArgument, verrs.Error())
	detailed, err := st.WithDetails(br)
	if err != nil {
		log.Error().Err(err).Msg("failed to attach field violations")
		return st.Err()
	}
	return detailed.Err()
}

// convertResultToProto converts the domain result to its wire form
func convertResultToProto(id string, r *domain.AdviceResult) *pb.EvaluateResponse {
	return &pb.EvaluateResponse{
		EvaluationID:  id,
		BMI:           r.BMI,
		Category:      string(r.Category),
		AgeGroup:      string(r.AgeGroup),
		HealthyMinKg:  r.HealthyMinKg,
		HealthyMaxKg:  r.HealthyMaxKg,
		DeltaKg:       r.DeltaKg,
		Direction:     string(r.Direction),
		Message:       string(r.Message),
		Advice:        r.AdviceText(),
		Disclaimer:    r.AgeGroup.Disclaimer(),
		ScalePosition: r.ScalePosition(),
		Color:         r.Category.Color(),
		CategoryOrder: r.Category.Order(),
	}
}
