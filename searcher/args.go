package searcher

// Hyperparameters for the lookahead

const DefaultSpecialRate = 0.1 // Chance per agent per turn to use a special when charged
const DashShare = 0.5          // Share of specials that dash rather than teleport
