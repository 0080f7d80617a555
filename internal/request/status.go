package request

// DetailedStatus maps the (status, current approver role) pair to what the
// requester sees. It is total: any pair it does not recognise falls back to
// the raw status so a new state can never panic the presentation layer.
func DetailedStatus(status, approverRole string) StatusView {
	switch status {
	case StatusPending:
		switch approverRole {
		case ApproverRoleManager:
			return StatusView{Label: "Waiting for Manager Approval", Severity: "warning"}
		case ApproverRoleSupervisor:
			return StatusView{Label: "Waiting for Supervisor Approval", Severity: "warning"}
		case ApproverRoleHRSafety:
			return StatusView{Label: "Waiting for HR/Safety Approval", Severity: "warning"}
		}
	case StatusInfoRequested:
		return StatusView{Label: "Additional Information Requested", Severity: "info"}
	case StatusApproved:
		if approverRole == ApproverRoleCompleted {
			return StatusView{Label: "Approved", Severity: "success"}
		}
	case StatusRejected:
		if approverRole == ApproverRoleCompleted {
			return StatusView{Label: "Rejected", Severity: "danger"}
		}
	}
	return StatusView{Label: status, Severity: "secondary"}
}
