package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRules(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		_, errs := CreateRules.Run(Input{Body: bodyOf(t, `{}`)})
		assert.Equal(t, Errors{
			FieldTitle:  MsgTitleEmpty,
			FieldYear:   MsgYearInvalid,
			FieldReview: MsgReviewEmpty,
		}, errs)
	})

	for _, year := range []string{"1799", "2101", "-1", "0", `"abc"`, "2021.5", `"99999999999999999999"`} {
		t.Run("year "+year, func(t *testing.T) {
			_, errs := CreateRules.Run(Input{Body: bodyOf(t, `{"titulo":"a","critica":"b","año":`+year+`}`)})
			require.Len(t, errs, 1)
			assert.Equal(t, MsgYearInvalid, errs[FieldYear])
		})
	}

	t.Run("whitespace title fails", func(t *testing.T) {
		_, errs := CreateRules.Run(Input{Body: bodyOf(t, `{"titulo":"   ","año":2000,"critica":"b"}`)})
		assert.Equal(t, Errors{FieldTitle: MsgTitleEmpty}, errs)
	})

	t.Run("sanitized data", func(t *testing.T) {
		data, errs := CreateRules.Run(Input{Body: bodyOf(t,
			`{"titulo":" <Dune> ","año":"2021","critica":"Great & long","caratula":" a/b.png ","extra":1}`)})
		require.Nil(t, errs)
		assert.Equal(t, Data{
			FieldTitle:  "&lt;Dune&gt;",
			FieldYear:   2021,
			FieldReview: "Great &amp; long",
			FieldCover:  "a&#x2F;b.png",
		}, data)
	})

	t.Run("cover object is rejected with the default message", func(t *testing.T) {
		_, errs := CreateRules.Run(Input{Body: bodyOf(t, `{"titulo":"a","año":2000,"critica":"b","caratula":[1]}`)})
		assert.Equal(t, Errors{FieldCover: DefaultMessage}, errs)
	})
}

func TestGetRules(t *testing.T) {
	data, errs := GetRules.Run(Input{Params: map[string]string{ParamID: "15"}})
	require.Nil(t, errs)
	id, ok := data.Int(ParamID)
	assert.True(t, ok)
	assert.Equal(t, 15, id)

	_, errs = GetRules.Run(Input{Params: map[string]string{ParamID: "abc"}})
	assert.Equal(t, Errors{ParamID: MsgInvalidMovieID}, errs)

	for _, raw := range []string{"99999999999999999999", ".5"} {
		t.Run("numeric without int part "+raw, func(t *testing.T) {
			data, errs := GetRules.Run(Input{Params: map[string]string{ParamID: raw}})
			require.Nil(t, errs)
			id, ok := data.Int(ParamID)
			assert.True(t, ok)
			assert.Equal(t, NoMatchID, id)
		})
	}
}

func TestUpdateRules(t *testing.T) {
	t.Run("id only", func(t *testing.T) {
		data, errs := UpdateRules.Run(Input{Body: bodyOf(t, `{"id_pelicula":"3"}`)})
		require.Nil(t, errs)
		assert.Equal(t, Data{FieldMovieID: 3}, data)
	})

	t.Run("missing id", func(t *testing.T) {
		_, errs := UpdateRules.Run(Input{Body: bodyOf(t, `{"titulo":"x"}`)})
		assert.Equal(t, Errors{FieldMovieID: MsgInvalidMovieID}, errs)
	})

	t.Run("present fields follow create constraints", func(t *testing.T) {
		_, errs := UpdateRules.Run(Input{Body: bodyOf(t, `{"id_pelicula":1,"titulo":"","año":3000,"critica":" "}`)})
		assert.Equal(t, Errors{
			FieldTitle:  MsgTitleEmpty,
			FieldYear:   MsgYearEdit,
			FieldReview: MsgReviewEmpty,
		}, errs)
	})
}

func TestDeleteRules(t *testing.T) {
	data, errs := DeleteRules.Run(Input{Body: bodyOf(t, `{"id_pelicula":9}`)})
	require.Nil(t, errs)
	assert.Equal(t, Data{FieldMovieID: 9}, data)

	_, errs = DeleteRules.Run(Input{Body: bodyOf(t, `{}`)})
	assert.Equal(t, Errors{FieldMovieID: MsgInvalidMovieID}, errs)
}
