// Package policy turns rendered observations into paddle actions.
//
// A policy sees the field the way a trained agent does: the last HistoryLen
// frames, each a FrameSize x FrameSize binarized image in which paddles and
// ball are 255 and everything else is 0. Policies may be slow, so drivers run
// them through Async and substitute Stay whenever no answer is available.
package policy
