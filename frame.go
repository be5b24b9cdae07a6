package tuit

// Step runs one frame: it hands info to w.Update with read-only access to t,
// clears t, then draws w into it. The result is the larger of the two
// results. Draw is skipped if Update fails.
func Step(w Widget, t Terminal, info UpdateInfo) (UpdateResult, error) {
	res, err := w.Update(info, ReadOnly(t))
	if err != nil {
		return res, err
	}

	Clear(t)
	drawn, err := w.Draw(info, t)
	return MergeResults(res, drawn), err
}
