package handler

import (
	"net/http/httptest"

	"github.com/tidwall/gjson"

	"greatglobal/pkg/testutil"
)

type testResponse struct {
	*httptest.ResponseRecorder
}

func (r *testResponse) json(path string) gjson.Result {
	return testutil.JSON(r.ResponseRecorder, path)
}
