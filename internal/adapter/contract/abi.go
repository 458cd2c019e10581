package contract

// registryABI lists the view functions of the GroupProof registry contract.
const registryABI = `[
	{
		"type": "function",
		"name": "getTotalProjects",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "getAllProjects",
		"stateMutability": "view",
		"inputs": [
			{"name": "offset", "type": "uint256"},
			{"name": "limit", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bytes32[]"}]
	},
	{
		"type": "function",
		"name": "getProject",
		"stateMutability": "view",
		"inputs": [{"name": "projectId", "type": "bytes32"}],
		"outputs": [
			{"name": "name", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "owner", "type": "address"},
			{"name": "createdAt", "type": "uint256"},
			{"name": "isActive", "type": "bool"},
			{"name": "contributorCount", "type": "uint256"},
			{"name": "commitCount", "type": "uint256"}
		]
	},
	{
		"type": "function",
		"name": "getCommits",
		"stateMutability": "view",
		"inputs": [
			{"name": "projectId", "type": "bytes32"},
			{"name": "offset", "type": "uint256"},
			{"name": "limit", "type": "uint256"}
		],
		"outputs": [
			{
				"name": "",
				"type": "tuple[]",
				"components": [
					{"name": "commitHash", "type": "bytes32"},
					{"name": "author", "type": "address"},
					{"name": "authorName", "type": "string"},
					{"name": "authorEmail", "type": "string"},
					{"name": "timestamp", "type": "uint256"},
					{"name": "gitTimestamp", "type": "uint256"},
					{"name": "message", "type": "string"},
					{"name": "filesChanged", "type": "uint16"},
					{"name": "additions", "type": "uint32"},
					{"name": "deletions", "type": "uint32"},
					{"name": "repoName", "type": "string"},
					{"name": "branch", "type": "string"}
				]
			}
		]
	},
	{
		"type": "function",
		"name": "getCommitCount",
		"stateMutability": "view",
		"inputs": [{"name": "projectId", "type": "bytes32"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "getContributors",
		"stateMutability": "view",
		"inputs": [{"name": "projectId", "type": "bytes32"}],
		"outputs": [{"name": "", "type": "address[]"}]
	},
	{
		"type": "function",
		"name": "getContributorStats",
		"stateMutability": "view",
		"inputs": [
			{"name": "projectId", "type": "bytes32"},
			{"name": "contributor", "type": "address"}
		],
		"outputs": [
			{
				"name": "",
				"type": "tuple",
				"components": [
					{"name": "totalCommits", "type": "uint256"},
					{"name": "totalAdditions", "type": "uint256"},
					{"name": "totalDeletions", "type": "uint256"},
					{"name": "totalFilesChanged", "type": "uint256"},
					{"name": "firstContribution", "type": "uint256"},
					{"name": "lastContribution", "type": "uint256"}
				]
			}
		]
	},
	{
		"type": "function",
		"name": "getUserProjects",
		"stateMutability": "view",
		"inputs": [{"name": "user", "type": "address"}],
		"outputs": [{"name": "", "type": "bytes32[]"}]
	},
	{
		"type": "function",
		"name": "isCommitRecorded",
		"stateMutability": "view",
		"inputs": [
			{"name": "projectId", "type": "bytes32"},
			{"name": "commitHash", "type": "bytes32"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`
