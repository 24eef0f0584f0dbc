// Package pb holds the wire contract of bmi.v1.BMIService.
//
// Requests and responses travel as google.protobuf.Struct messages; the
// types below give them a typed Go shape on both sides of the connection.
package pb

import (
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// MeasurementRequest is the input of both Evaluate and Validate
type MeasurementRequest struct {
	Weight string
	Height string
	Age    string
}

// ToStruct encodes the request for the wire
func (r *MeasurementRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"weight": structpb.NewStringValue(r.Weight),
		"height": structpb.NewStringValue(r.Height),
		"age":    structpb.NewStringValue(r.Age),
	}}
}

// MeasurementRequestFromStruct decodes a request. Missing or null fields read
// as blank; numbers are accepted as well as strings, so {"weight": 70} and
// {"weight": "70"} mean the same.
func MeasurementRequestFromStruct(s *structpb.Struct) *MeasurementRequest {
	return &MeasurementRequest{
		Weight: text(s, "weight"),
		Height: text(s, "height"),
		Age:    text(s, "age"),
	}
}

// EvaluateResponse is the advice returned by Evaluate
type EvaluateResponse struct {
	EvaluationID  string
	BMI           float64
	Category      string
	AgeGroup      string
	HealthyMinKg  float64
	HealthyMaxKg  float64
	DeltaKg       float64
	Direction     string
	Message       string
	Advice        string
	Disclaimer    string
	ScalePosition float64
	Color         string
	CategoryOrder int
}

// ToStruct encodes the response for the wire
func (r *EvaluateResponse) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"evaluation_id":  structpb.NewStringValue(r.EvaluationID),
		"bmi":            structpb.NewNumberValue(r.BMI),
		"category":       structpb.NewStringValue(r.Category),
		"age_group":      structpb.NewStringValue(r.AgeGroup),
		"healthy_min_kg": structpb.NewNumberValue(r.HealthyMinKg),
		"healthy_max_kg": structpb.NewNumberValue(r.HealthyMaxKg),
		"delta_kg":       structpb.NewNumberValue(r.DeltaKg),
		"direction":      structpb.NewStringValue(r.Direction),
		"message":        structpb.NewStringValue(r.Message),
		"advice":         structpb.NewStringValue(r.Advice),
		"disclaimer":     structpb.NewStringValue(r.Disclaimer),
		"scale_position": structpb.NewNumberValue(r.ScalePosition),
		"color":          structpb.NewStringValue(r.Color),
		"category_order": structpb.NewNumberValue(float64(r.CategoryOrder)),
	}}
}

// EvaluateResponseFromStruct decodes an Evaluate response
func EvaluateResponseFromStruct(s *structpb.Struct) *EvaluateResponse {
	return &EvaluateResponse{
		EvaluationID:  str(s, "evaluation_id"),
		BMI:           num(s, "bmi"),
		Category:      str(s, "category"),
		AgeGroup:      str(s, "age_group"),
		HealthyMinKg:  num(s, "healthy_min_kg"),
		HealthyMaxKg:  num(s, "healthy_max_kg"),
		DeltaKg:       num(s, "delta_kg"),
		Direction:     str(s, "direction"),
		Message:       str(s, "message"),
		Advice:        str(s, "advice"),
		Disclaimer:    str(s, "disclaimer"),
		ScalePosition: num(s, "scale_position"),
		Color:         str(s, "color"),
		CategoryOrder: int(num(s, "category_order")),
	}
}

// FieldViolation is one rejected input field
type FieldViolation struct {
	Field   string
	Code    string
	Message string
}

// ValidateResponse lists the field violations of a Validate call
type ValidateResponse struct {
	Valid      bool
	Violations []FieldViolation
}

// ToStruct encodes the response for the wire
func (r *ValidateResponse) ToStruct() *structpb.Struct {
	violations := make([]*structpb.Value, len(r.Violations))
	for i, v := range r.Violations {
		violations[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"field":   structpb.NewStringValue(v.Field),
			"code":    structpb.NewStringValue(v.Code),
			"message": structpb.NewStringValue(v.Message),
		}})
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"valid":      structpb.NewBoolValue(r.Valid),
		"violations": structpb.NewListValue(&structpb.ListValue{Values: violations}),
	}}
}

// ValidateResponseFromStruct decodes a Validate response
func ValidateResponseFromStruct(s *structpb.Struct) *ValidateResponse {
	resp := &ValidateResponse{Valid: s.GetFields()["valid"].GetBoolValue()}
	for _, v := range s.GetFields()["violations"].GetListValue().GetValues() {
		fv := v.GetStructValue()
		resp.Violations = append(resp.Violations, FieldViolation{
			Field:   str(fv, "field"),
			Code:    str(fv, "code"),
			Message: str(fv, "message"),
		})
	}
	return resp
}

// FieldViolationsFromError extracts the BadRequest details attached to an
// InvalidArgument status by Evaluate. Code is not carried in the status detail.
func FieldViolationsFromError(err error) []FieldViolation {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}

	var out []FieldViolation
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, fv := range br.GetFieldViolations() {
			out = append(out, FieldViolation{Field: fv.GetField(), Message: fv.GetDescription()})
		}
	}
	return out
}

func str(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// text reads a request field as the user would have typed it
func text(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	case *structpb.Value_NullValue, nil:
		return ""
	default:
		// booleans, lists and objects fail number parsing downstream
		return fmt.Sprint(v.AsInterface())
	}
}

func num(s *structpb.Struct, key string) float64 {
	return s.GetFields()[key].GetNumberValue()
}
