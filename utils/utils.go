package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct 转换失败时记录日志并返回 nil
func ToStruct(fields map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return s
}

// GetString 取字符串字段，不存在或类型不符时返回空串
func GetString(s *structpb.Struct, key string) string {
	if v, ok := s.GetFields()[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

// GetStrings 取字符串列表字段，忽略非字符串元素
func GetStrings(s *structpb.Struct, key string) []string {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil
	}
	var res []string
	for _, item := range v.GetListValue().GetValues() {
		if str, ok := item.GetKind().(*structpb.Value_StringValue); ok {
			res = append(res, str.StringValue)
		}
	}
	return res
}

// GetStructs 取对象列表字段
func GetStructs(s *structpb.Struct, key string) []*structpb.Struct {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil
	}
	var res []*structpb.Struct
	for _, item := range v.GetListValue().GetValues() {
		if st := item.GetStructValue(); st != nil {
			res = append(res, st)
		}
	}
	return res
}
