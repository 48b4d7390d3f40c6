package receiver

import "github.com/infraredgo/infrared/remote"

// PollRemoteControl composes Receiver.Poll with a remote.Table lookup
// (§4.4's poll_remotecontrol convenience). ok is true only when a frame
// completed on this call AND its (address, code) resolved to a mapped
// Button; a completed frame from an unrecognised address or code reports
// ok=false with button left at remote.Unmapped, the same as no frame having
// completed at all.
func PollRemoteControl[Cmd any](r *Receiver[Cmd], table *remote.Table[Cmd]) (button remote.Button, ok bool, err error) {
	cmd, completed, err := r.Poll()
	if err != nil || !completed {
		return remote.Unmapped, false, err
	}
	button, ok = table.Lookup(cmd)
	return button, ok, nil
}
